package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe/internal/keys"
	"cafe/internal/models"
	"cafe/internal/storage"
)

func place(id, name, region string) models.Place {
	return models.Place{ID: id, Name: name}.WithRegion(region)
}

func TestCatalog_Lookup(t *testing.T) {
	anon := models.Place{Name: "무명", Longitude: 127.7, Latitude: 37.9}
	c := New([]models.Place{place("1", "a", "효자1동"), anon})

	got, err := c.Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	got, err = c.Lookup(anon.Key())
	require.NoError(t, err)
	assert.Equal(t, "무명", got.Name)

	_, err = c.Lookup("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_Regions(t *testing.T) {
	c := New([]models.Place{
		place("1", "a", "효자1동"),
		place("2", "b", ""),
		place("3", "c", "근화동"),
		place("4", "d", "효자1동"),
		{ID: "5", Name: "unannotated"},
	})

	assert.Equal(t, []RegionEntry{
		{Value: "근화동", Label: "근화동", Count: 1},
		{Value: "효자1동", Label: "효자1동", Count: 2},
		{Value: "", Label: "기타", Count: 2},
	}, c.Regions())
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	places := []models.Place{place("1", "a", "효자1동"), place("2", "b", "")}
	require.NoError(t, Save(ctx, kv, places))

	c := Load(ctx, kv)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, places, c.Places())
	got, err := c.Lookup("2")
	require.NoError(t, err)
	require.NotNil(t, got.RegionLabel, "empty label survives a reload")
	assert.Equal(t, "", *got.RegionLabel)
}

func TestLoad_DegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, 0, Load(ctx, storage.NewMemoryKV()).Len())

	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, keys.Places, []byte("][")))
	assert.Equal(t, 0, Load(ctx, kv).Len())
}

func TestHolder_Reload(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	h := NewHolder(kv, nil)
	assert.Equal(t, 0, h.Current().Len())

	require.NoError(t, Save(ctx, kv, []models.Place{place("1", "a", "")}))
	assert.Equal(t, 0, h.Current().Len(), "no change before reload")

	h.Reload(ctx)
	assert.Equal(t, 1, h.Current().Len())
}
