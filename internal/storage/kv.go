// Package storage provides durable key-value backends. Each namespace holds
// one serialized blob that is read and replaced as a whole.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a namespace has never been written.
var ErrNotFound = errors.New("storage: namespace not found")

// KV is a namespace-addressed blob store.
type KV interface {
	Get(ctx context.Context, namespace string) ([]byte, error)
	Set(ctx context.Context, namespace string, blob []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendBadger   = "badger"
	BackendS3       = "s3"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Backend     string
	BadgerDir   string
	S3          S3Options
	Bucket      string
	DatabaseURL string
}

// Open connects the configured backend.
func Open(ctx context.Context, opts Options) (KV, error) {
	switch opts.Backend {
	case BackendBadger, "":
		kv, err := OpenBadger(opts.BadgerDir)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case BackendS3:
		s3, err := NewS3Service(opts.S3)
		if err != nil {
			return nil, err
		}
		if _, err := s3.CreateBucket(ctx, opts.Bucket, opts.S3.Region); err != nil {
			return nil, fmt.Errorf("storage: create bucket %q: %w", opts.Bucket, err)
		}
		return s3.KV(opts.Bucket), nil
	case BackendPostgres:
		kv, err := OpenPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", opts.Backend)
	}
}
