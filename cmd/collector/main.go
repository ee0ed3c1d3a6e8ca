package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cafe/internal/brand"
	"cafe/internal/catalog"
	"cafe/internal/collect"
	"cafe/internal/config"
	"cafe/internal/env"
	"cafe/internal/region"
	"cafe/internal/storage"
	"cafe/pkg/graceful"
	"cafe/pkg/kakao"
	"cafe/pkg/location"
)

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Fatal().Err(err).Msg("cannot load .env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	config.SetupLogging(cfg.LogLevel, cfg.LogFormat)
	if cfg.KakaoRestKey == "" {
		log.Fatal().Msg("KAKAO_REST_KEY is required for collection")
	}

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()
	logger := log.Logger
	start := time.Now()

	kv, err := storage.Open(ctx, cfg.Storage())
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open store")
	}
	defer kv.Close()

	client := kakao.NewClient(cfg.KakaoRestKey,
		kakao.WithBaseURL(cfg.KakaoBaseURL),
		kakao.WithRate(cfg.ProviderRPS),
	)

	var src region.Source = region.NewKakaoSource(client)
	if cfg.Geocoder == config.GeocoderNominatim {
		src = region.NewNominatimSource(location.NewClient(cfg.NominatimURL))
	}

	opts := collect.RunOptions{
		Region: cfg.Region(),
		Rows:   cfg.GridRows,
		Cols:   cfg.GridCols,
		Collect: collect.Options{
			Category: cfg.CategoryCode,
			PageSize: cfg.PageSize,
			Sort:     kakao.SortAccuracy,
			Pacing:   cfg.TilePacing,
		},
		AnnotateBatch: cfg.AnnotateBatch,
		AnnotatePause: cfg.AnnotatePause,
	}

	logger.Info().Str("region", opts.Region.Name).Str("bounds", opts.Region.Bounds.String()).Msg("starting collection run")
	places, err := collect.Run(ctx, client, src, brand.Default, opts)
	if err != nil {
		// an interrupted run never replaces the previous snapshot
		logger.Error().Err(err).Msg("collection run aborted")
		return
	}

	if err := catalog.Save(ctx, kv, places); err != nil {
		logger.Fatal().Err(err).Msg("cannot save catalog")
	}
	logger.Info().Int("places", len(places)).Dur("took", time.Since(start)).Msg("catalog saved")
}
