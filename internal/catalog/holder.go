package catalog

import (
	"context"
	"sync/atomic"

	"cafe/internal/storage"
)

// Holder publishes the current catalog to concurrent readers and lets it be
// replaced wholesale after a new collection run.
type Holder struct {
	kv      storage.KV
	current atomic.Pointer[Catalog]
}

func NewHolder(kv storage.KV, initial *Catalog) *Holder {
	h := &Holder{kv: kv}
	if initial == nil {
		initial = New(nil)
	}
	h.current.Store(initial)
	return h
}

// Current returns the catalog in effect.
func (h *Holder) Current() *Catalog { return h.current.Load() }

// Reload replaces the current catalog with the persisted snapshot.
func (h *Holder) Reload(ctx context.Context) *Catalog {
	c := Load(ctx, h.kv)
	h.current.Store(c)
	return c
}
