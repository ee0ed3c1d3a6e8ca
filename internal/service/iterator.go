// Package service contains helpers used by application services. In
// particular it provides an Iterator that consumes messages from a message
// source (Kafka via pkg/kafkaclient), decodes them and hands them to a
// handler, committing offsets only for handled messages.
package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Iterator decodes messages from a MessageIterator and hands them to a
// handler one at a time, in arrival order.
//
// The Iterator does not manage the lifecycle of the underlying message source;
// callers start and stop their consumer outside.
type Iterator[T any] struct {
	msgIterator MessageIterator
	decode      DecodeFunc[T]
}

func NewIterator[T any](iterator MessageIterator, decode DecodeFunc[T]) *Iterator[T] {
	return &Iterator[T]{
		msgIterator: iterator,
		decode:      decode,
	}
}

// Run processes messages until the source channel is closed or ctx is done.
//
// Undecodable messages are logged and committed so they are not redelivered.
// Messages whose handler fails are logged and left uncommitted.
func (it *Iterator[T]) Run(ctx context.Context, handle HandlerFunc[T]) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-it.msgIterator.Messages():
			if !ok {
				return nil
			}
			v, err := it.decode(msg)
			if err != nil {
				log.Warn().Err(err).Int64("offset", msg.Offset).Msg("skipping undecodable message")
			} else if err := handle(ctx, v); err != nil {
				log.Warn().Err(err).Int64("offset", msg.Offset).Msg("failed to handle message")
				continue
			}
			if err := it.msgIterator.CommitOffset(ctx, msg); err != nil {
				log.Warn().Err(err).Int64("offset", msg.Offset).Msg("failed to commit offset")
			}
		}
	}
}
