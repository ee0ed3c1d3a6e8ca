// Package config builds the process configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"cafe/internal/storage"
	"cafe/pkg/geo"
	"cafe/pkg/kafkaclient"
)

// Geocoder names accepted in GEOCODER.
const (
	GeocoderKakao     = "kakao"
	GeocoderNominatim = "nominatim"
)

type Config struct {
	KakaoRestKey string `mapstructure:"KAKAO_REST_KEY"`
	KakaoBaseURL string `mapstructure:"KAKAO_BASE_URL"`
	ProviderRPS  float64 `mapstructure:"PROVIDER_RPS"`

	RegionName string  `mapstructure:"REGION_NAME"`
	SWLat      float64 `mapstructure:"REGION_SW_LAT"`
	SWLon      float64 `mapstructure:"REGION_SW_LON"`
	NELat      float64 `mapstructure:"REGION_NE_LAT"`
	NELon      float64 `mapstructure:"REGION_NE_LON"`
	GridRows   int     `mapstructure:"GRID_ROWS"`
	GridCols   int     `mapstructure:"GRID_COLS"`

	CategoryCode string        `mapstructure:"CATEGORY_CODE"`
	PageSize     int           `mapstructure:"PAGE_SIZE"`
	TilePacing   time.Duration `mapstructure:"TILE_PACING"`

	AnnotateBatch int           `mapstructure:"ANNOTATE_BATCH"`
	AnnotatePause time.Duration `mapstructure:"ANNOTATE_PAUSE"`
	Geocoder      string        `mapstructure:"GEOCODER"`
	NominatimURL  string        `mapstructure:"NOMINATIM_URL"`

	StoreBackend   string `mapstructure:"STORE_BACKEND"`
	BadgerDir      string `mapstructure:"BADGER_DIR"`
	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`
	MinioRegion    string `mapstructure:"MINIO_REGION"`
	StoreBucket    string `mapstructure:"STORE_BUCKET"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	KafkaBroker  string `mapstructure:"KAFKA_BROKER"`
	KafkaTopic   string `mapstructure:"KAFKA_TOPIC"`
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`

	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	LocateTimeout time.Duration `mapstructure:"LOCATE_TIMEOUT"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"KAKAO_REST_KEY":   "",
	"KAKAO_BASE_URL":   "https://dapi.kakao.com",
	"PROVIDER_RPS":     10.0,
	"REGION_NAME":      geo.Chuncheon.Name,
	"REGION_SW_LAT":    geo.Chuncheon.Bounds.SW.Lat,
	"REGION_SW_LON":    geo.Chuncheon.Bounds.SW.Lon,
	"REGION_NE_LAT":    geo.Chuncheon.Bounds.NE.Lat,
	"REGION_NE_LON":    geo.Chuncheon.Bounds.NE.Lon,
	"GRID_ROWS":        4,
	"GRID_COLS":        4,
	"CATEGORY_CODE":    "CE7",
	"PAGE_SIZE":        15,
	"TILE_PACING":      "120ms",
	"ANNOTATE_BATCH":   10,
	"ANNOTATE_PAUSE":   "50ms",
	"GEOCODER":         GeocoderKakao,
	"NOMINATIM_URL":    "",
	"STORE_BACKEND":    storage.BackendBadger,
	"BADGER_DIR":       "./data/badger",
	"MINIO_ENDPOINT":   "",
	"MINIO_ACCESS_KEY": "",
	"MINIO_SECRET_KEY": "",
	"MINIO_USE_SSL":    false,
	"MINIO_REGION":     "",
	"STORE_BUCKET":     "cafe-directory",
	"DATABASE_URL":     "",
	"KAFKA_BROKER":     "",
	"KAFKA_TOPIC":      "cafe.interactions",
	"KAFKA_GROUP_ID":   "cafe-server",
	"SERVER_ADDRESS":   ":8080",
	"LOCATE_TIMEOUT":   "7s",
	"LOG_LEVEL":        "info",
	"LOG_FORMAT":       "console",
}

// Load reads configuration from the process environment over defaults.
func Load() (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Geocoder = strings.ToLower(strings.TrimSpace(cfg.Geocoder))
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Geocoder {
	case GeocoderKakao, GeocoderNominatim:
	default:
		return fmt.Errorf("config: unknown GEOCODER %q", c.Geocoder)
	}
	switch c.StoreBackend {
	case storage.BackendBadger, storage.BackendS3, storage.BackendPostgres, storage.BackendMemory:
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if c.StoreBackend == storage.BackendPostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL is required for the postgres backend")
	}
	if c.GridRows < 1 || c.GridCols < 1 {
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.GridRows, c.GridCols)
	}
	if c.SWLat >= c.NELat || c.SWLon >= c.NELon {
		return fmt.Errorf("config: region corners are not south-west / north-east")
	}
	return nil
}

// Region is the configured collection region.
func (c *Config) Region() geo.Region {
	return geo.Region{
		Name:   c.RegionName,
		Bounds: geo.NewBounds(c.SWLat, c.SWLon, c.NELat, c.NELon),
	}
}

// Storage returns the backend options.
func (c *Config) Storage() storage.Options {
	return storage.Options{
		Backend:   c.StoreBackend,
		BadgerDir: c.BadgerDir,
		S3: storage.S3Options{
			Endpoint:  c.MinioEndpoint,
			AccessKey: c.MinioAccessKey,
			SecretKey: c.MinioSecretKey,
			UseSSL:    c.MinioUseSSL,
			Region:    c.MinioRegion,
		},
		Bucket:      c.StoreBucket,
		DatabaseURL: c.DatabaseURL,
	}
}

// Kafka returns the consumer settings, or false when no broker is set.
func (c *Config) Kafka() (kafkaclient.Config, bool) {
	if c.KafkaBroker == "" {
		return kafkaclient.Config{}, false
	}
	return kafkaclient.Config{Broker: c.KafkaBroker, Topic: c.KafkaTopic, GroupID: c.KafkaGroupID}, true
}
