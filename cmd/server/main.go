package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"cafe/internal/catalog"
	"cafe/internal/config"
	"cafe/internal/env"
	"cafe/internal/handler"
	"cafe/internal/interaction"
	"cafe/internal/service"
	"cafe/internal/storage"
	"cafe/pkg/graceful"
	"cafe/pkg/kafkaclient"
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

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	kv, err := storage.Open(ctx, cfg.Storage())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open store")
	}
	defer kv.Close()

	catalogs := catalog.NewHolder(kv, catalog.Load(ctx, kv))
	store := interaction.Open(ctx, kv)
	log.Info().Int("places", catalogs.Current().Len()).Msg("catalog loaded")

	if kcfg, ok := cfg.Kafka(); ok {
		log.Info().Str("broker", kcfg.Broker).Str("topic", kcfg.Topic).Str("group", kcfg.GroupID).Msg("consuming interaction events")
		consumer := kafkaclient.NewKafkaConsumer(kcfg)
		consumer.StartConsuming(ctx)
		defer consumer.Stop()
		go func() {
			if err := service.ConsumeInteractions(ctx, consumer, store); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("interaction consumer stopped")
			}
		}()
	}

	places := handler.NewPlacesHandler(catalogs, store, cfg.LocateTimeout)
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           handler.NewRouter(places),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.ServerAddress).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
