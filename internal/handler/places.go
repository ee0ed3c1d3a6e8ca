// Package handler exposes the place list, details, interactions and region
// picker over HTTP.
package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cafe/internal/catalog"
	"cafe/internal/filter"
	"cafe/internal/interaction"
	"cafe/internal/models"
	"cafe/internal/rank"
	"cafe/pkg/geo"
)

// FocusZoom is the map zoom level requested when a detail view focuses a place.
const FocusZoom = 3

// Catalogs yields the catalog in effect.
type Catalogs interface {
	Current() *catalog.Catalog
	Reload(ctx context.Context) *catalog.Catalog
}

// InteractionStore is the subset of the interaction store the handlers use.
type InteractionStore interface {
	RecordClick(ctx context.Context, key string) (models.InteractionRecord, error)
	ToggleFavorite(ctx context.Context, key string) (models.InteractionRecord, error)
	Get(key string) *models.InteractionRecord
	Snapshot() interaction.Snapshot
}

// PlaceView is one entry of the place list.
type PlaceView struct {
	Key        string                    `json:"key"`
	Place      models.Place              `json:"place"`
	Distance   *float64                  `json:"distance,omitempty"`
	Score      float64                   `json:"score"`
	Record     *models.InteractionRecord `json:"record,omitempty"`
	Directions string                    `json:"directions"`
}

// ListResponse is the body of GET /api/places.
type ListResponse struct {
	Query  string      `json:"query"`
	Count  int         `json:"count"`
	Places []PlaceView `json:"places"`
}

// Focus tells the map surface which place to center on.
type Focus struct {
	Key  string `json:"key"`
	Zoom int    `json:"zoom"`
}

// DetailResponse is the body of GET /api/places/:key.
type DetailResponse struct {
	PlaceView
	Focus Focus `json:"focus"`
}

type PlacesHandler struct {
	catalogs      Catalogs
	store         InteractionStore
	locateTimeout time.Duration
	now           func() time.Time
}

func NewPlacesHandler(catalogs Catalogs, store InteractionStore, locateTimeout time.Duration) *PlacesHandler {
	if locateTimeout <= 0 {
		locateTimeout = filter.DefaultLocateTimeout
	}
	return &PlacesHandler{
		catalogs:      catalogs,
		store:         store,
		locateTimeout: locateTimeout,
		now:           time.Now,
	}
}

// List handles GET /api/places.
func (h *PlacesHandler) List(c *gin.Context) {
	st, results := h.run(c)
	views := make([]PlaceView, 0, len(results))
	for _, r := range results {
		views = append(views, view(r))
	}
	c.JSON(http.StatusOK, ListResponse{
		Query:  filter.Save(st).Encode(),
		Count:  len(views),
		Places: views,
	})
}

// Export handles GET /api/export.csv.
func (h *PlacesHandler) Export(c *gin.Context) {
	_, results := h.run(c)
	c.Header("Content-Disposition", `attachment; filename="cafes.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := filter.WriteCSV(c.Writer, results); err != nil {
		log.Warn().Err(err).Msg("csv export interrupted")
	}
}

// Detail handles GET /api/places/:key.
func (h *PlacesHandler) Detail(c *gin.Context) {
	key := c.Param("key")
	p, err := h.catalogs.Current().Lookup(key)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		return
	}
	rec := h.store.Get(key)
	ref := filter.AcquireReference(c.Request.Context(), queryLocator(c), h.locateTimeout)
	v := view(filter.Result{
		Place:    p,
		Record:   rec,
		Distance: geo.Distance(p.Coordinates(), ref),
		Score:    rank.Score(rec, h.now()),
	})
	c.JSON(http.StatusOK, DetailResponse{PlaceView: v, Focus: Focus{Key: key, Zoom: FocusZoom}})
}

// Click handles POST /api/places/:key/click.
func (h *PlacesHandler) Click(c *gin.Context) {
	h.mutate(c, h.store.RecordClick)
}

// Favorite handles POST /api/places/:key/favorite.
func (h *PlacesHandler) Favorite(c *gin.Context) {
	h.mutate(c, h.store.ToggleFavorite)
}

// Regions handles GET /api/regions.
func (h *PlacesHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogs.Current().Regions())
}

// Reload handles POST /api/catalog/reload.
func (h *PlacesHandler) Reload(c *gin.Context) {
	cat := h.catalogs.Reload(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"places": cat.Len()})
}

func (h *PlacesHandler) mutate(c *gin.Context, op func(context.Context, string) (models.InteractionRecord, error)) {
	key := c.Param("key")
	if _, err := h.catalogs.Current().Lookup(key); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		return
	}
	rec, err := op(c.Request.Context(), key)
	if err != nil {
		// the in-memory record is updated even when persisting fails
		log.Error().Err(err).Str("key", key).Msg("failed to persist interaction")
	}
	c.JSON(http.StatusOK, rec)
}

func (h *PlacesHandler) run(c *gin.Context) (filter.State, []filter.Result) {
	st := filter.Load(c.Request.URL.Query())
	ref := filter.AcquireReference(c.Request.Context(), queryLocator(c), h.locateTimeout)
	results := filter.Apply(h.catalogs.Current().Places(), st, ref, h.store.Snapshot(), h.now())
	return st, results
}

// queryLocator reads the reference point from lat/lon query parameters, or
// returns nil when the client did not send one.
func queryLocator(c *gin.Context) filter.Locator {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		return nil
	}
	return filter.LocatorFunc(func(context.Context) (geo.Coordinates, error) {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return geo.Coordinates{}, geo.ErrInvalidCoordinate
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return geo.Coordinates{}, geo.ErrInvalidCoordinate
		}
		return geo.Coordinates{Lat: lat, Lon: lon}, nil
	})
}

func view(r filter.Result) PlaceView {
	v := PlaceView{
		Key:        r.Place.Key(),
		Place:      r.Place,
		Score:      r.Score,
		Record:     r.Record,
		Directions: r.Place.DirectionsURL(),
	}
	if !math.IsInf(r.Distance, 0) && !math.IsNaN(r.Distance) {
		d := r.Distance
		v.Distance = &d
	}
	return v
}
