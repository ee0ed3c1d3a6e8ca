package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerKV stores namespaces as keys of an embedded Badger database.
type BadgerKV struct {
	db *badger.DB
}

// OpenBadger opens (or creates) the database in dir. An empty dir opens an
// in-memory instance.
func OpenBadger(dir string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open badger at %q: %w", dir, err)
	}
	return NewBadgerKV(db), nil
}

func NewBadgerKV(db *badger.DB) *BadgerKV {
	return &BadgerKV{db: db}
}

func (b *BadgerKV) Get(_ context.Context, namespace string) ([]byte, error) {
	var blob []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(namespace))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("storage: get %q: %w", namespace, err)
		}
		blob, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (b *BadgerKV) Set(_ context.Context, namespace string, blob []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(namespace), blob); err != nil {
			return fmt.Errorf("storage: set %q: %w", namespace, err)
		}
		return nil
	})
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}
