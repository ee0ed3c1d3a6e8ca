package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"cafe/internal/models"
)

// Applier mutates interaction state for one event.
type Applier interface {
	Apply(ctx context.Context, ev models.InteractionEvent) (models.InteractionRecord, error)
}

// DecodeInteraction parses a JSON interaction event. The message key is used
// as the place key when the payload omits it.
func DecodeInteraction(msg kafka.Message) (models.InteractionEvent, error) {
	var ev models.InteractionEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return ev, fmt.Errorf("service: decode interaction event: %w", err)
	}
	if ev.Key == "" {
		ev.Key = string(msg.Key)
	}
	if strings.TrimSpace(ev.Key) == "" {
		return ev, fmt.Errorf("service: interaction event without place key")
	}
	if !ev.Type.Valid() {
		return ev, fmt.Errorf("service: unknown interaction event type %q", ev.Type)
	}
	return ev, nil
}

// ConsumeInteractions applies every event from src to store until src is
// exhausted or ctx is done. A favorite event without a target state toggles,
// so its redelivery after a failed apply flips the flag back; producers should
// set "favorite".
func ConsumeInteractions(ctx context.Context, src MessageIterator, store Applier) error {
	it := NewIterator(src, DecodeInteraction)
	return it.Run(ctx, func(ctx context.Context, ev models.InteractionEvent) error {
		_, err := store.Apply(ctx, ev)
		return err
	})
}
