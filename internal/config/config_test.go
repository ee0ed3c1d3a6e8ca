package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe/pkg/geo"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.GridRows)
	assert.Equal(t, 4, cfg.GridCols)
	assert.Equal(t, "CE7", cfg.CategoryCode)
	assert.Equal(t, 15, cfg.PageSize)
	assert.Equal(t, 120*time.Millisecond, cfg.TilePacing)
	assert.Equal(t, 10, cfg.AnnotateBatch)
	assert.Equal(t, 50*time.Millisecond, cfg.AnnotatePause)
	assert.Equal(t, 7*time.Second, cfg.LocateTimeout)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, geo.Chuncheon, cfg.Region())

	_, ok := cfg.Kafka()
	assert.False(t, ok)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GRID_ROWS", "2")
	t.Setenv("TILE_PACING", "1s")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("KAFKA_BROKER", "localhost:9092")
	t.Setenv("REGION_NAME", "원주시")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.GridRows)
	assert.Equal(t, time.Second, cfg.TilePacing)
	assert.Equal(t, "memory", cfg.Storage().Backend)
	assert.Equal(t, "원주시", cfg.Region().Name)

	k, ok := cfg.Kafka()
	require.True(t, ok)
	assert.Equal(t, "localhost:9092", k.Broker)
	assert.Equal(t, "cafe.interactions", k.Topic)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"geocoder", "GEOCODER", "google"},
		{"backend", "STORE_BACKEND", "floppy"},
		{"postgres without url", "STORE_BACKEND", "postgres"},
		{"grid", "GRID_COLS", "0"},
		{"corners", "REGION_SW_LAT", "40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
