// Package interaction keeps per-place engagement statistics and persists the
// whole set to a durable namespace on every change.
package interaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"cafe/internal/keys"
	"cafe/internal/metrics"
	"cafe/internal/models"
	"cafe/internal/storage"
)

// Store owns the interaction records, keyed by place identity key.
//
// Several processes sharing one durable namespace are not coordinated: the
// last full write wins.
type Store struct {
	mu      sync.RWMutex
	kv      storage.KV
	records map[string]models.InteractionRecord
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for lastSeenAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open loads the persisted records. Missing or unreadable data yields an
// empty store; Open never fails because of stored content.
func Open(ctx context.Context, kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		records: make(map[string]models.InteractionRecord),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	blob, err := kv.Get(ctx, keys.Interactions)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return s
	case err != nil:
		log.Warn().Err(err).Msg("interaction store unreadable, starting empty")
		return s
	}
	var loaded map[string]models.InteractionRecord
	if err := json.Unmarshal(blob, &loaded); err != nil {
		log.Warn().Err(err).Msg("interaction store corrupt, starting empty")
		return s
	}
	for k, v := range loaded {
		if v.ClickCount < 0 {
			v.ClickCount = 0
		}
		s.records[k] = v
	}
	return s
}

// RecordClick increments the click count of key and marks it seen now.
func (s *Store) RecordClick(ctx context.Context, key string) (models.InteractionRecord, error) {
	return s.recordClickAt(ctx, key, time.Time{})
}

// recordClickAt marks key seen at the given time, or now when at is zero.
// lastSeenAt never moves backwards.
func (s *Store) recordClickAt(ctx context.Context, key string, at time.Time) (models.InteractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if at.IsZero() {
		at = s.now()
	}
	rec := s.records[key]
	rec.ClickCount++
	if rec.LastSeenAt == nil || at.After(*rec.LastSeenAt) {
		rec.LastSeenAt = &at
	}
	s.records[key] = rec

	metrics.Interactions.WithLabelValues(string(models.InteractionClick)).Inc()
	return rec, s.persistLocked(ctx)
}

// ToggleFavorite flips the favorite flag of key, leaving other fields as they
// are. A new key starts with no clicks and no lastSeenAt.
func (s *Store) ToggleFavorite(ctx context.Context, key string) (models.InteractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[key]
	rec.Favorite = !rec.Favorite
	s.records[key] = rec

	metrics.Interactions.WithLabelValues(string(models.InteractionFavorite)).Inc()
	return rec, s.persistLocked(ctx)
}

// SetFavorite sets the favorite flag of key to favorite.
func (s *Store) SetFavorite(ctx context.Context, key string, favorite bool) (models.InteractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[key]
	rec.Favorite = favorite
	s.records[key] = rec

	metrics.Interactions.WithLabelValues(string(models.InteractionFavorite)).Inc()
	return rec, s.persistLocked(ctx)
}

// Get returns the record of key, or nil when the key was never touched.
func (s *Store) Get(key string) *models.InteractionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[key]
	if !ok {
		return nil
	}
	return &rec
}

// Snapshot returns an immutable copy of all records for one pipeline pass.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.InteractionRecord, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return Snapshot(out)
}

// Apply performs the mutation described by ev.
func (s *Store) Apply(ctx context.Context, ev models.InteractionEvent) (models.InteractionRecord, error) {
	switch ev.Type {
	case models.InteractionClick:
		return s.recordClickAt(ctx, ev.Key, ev.At)
	case models.InteractionFavorite:
		if ev.Favorite != nil {
			return s.SetFavorite(ctx, ev.Key, *ev.Favorite)
		}
		return s.ToggleFavorite(ctx, ev.Key)
	default:
		return models.InteractionRecord{}, fmt.Errorf("interaction: unknown event type %q", ev.Type)
	}
}

func (s *Store) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("interaction: encode store: %w", err)
	}
	if err := s.kv.Set(ctx, keys.Interactions, blob); err != nil {
		return fmt.Errorf("interaction: persist store: %w", err)
	}
	return nil
}

// Snapshot is a read-only view of the store at one instant.
type Snapshot map[string]models.InteractionRecord

// Get returns the record of key, or nil.
func (s Snapshot) Get(key string) *models.InteractionRecord {
	rec, ok := s[key]
	if !ok {
		return nil
	}
	return &rec
}
