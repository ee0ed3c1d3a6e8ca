// Package kafkaclient wraps a kafka-go consumer-group reader behind a channel
// of messages with manual offset commits.
package kafkaclient

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"cafe/pkg/graceful"
)

// KafkaReader defines the interface for a Kafka message reader.
// This allows for easy mocking in unit tests.
type KafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Config selects the topic and consumer group to read.
type Config struct {
	Broker  string
	Topic   string
	GroupID string
}

// readBackoff is the pause after a failed read.
const readBackoff = time.Second

// KafkaConsumer manages the Kafka consumer and its message loop.
type KafkaConsumer struct {
	reader KafkaReader
	// doneChan signals a graceful shutdown.
	doneChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	// messageChan hands messages to the consumer of Messages().
	messageChan chan kafka.Message
}

// NewKafkaConsumer creates a consumer reading cfg.Topic as member of cfg.GroupID.
func NewKafkaConsumer(cfg Config) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
		// Offsets are committed explicitly after a message is applied.
		CommitInterval: 0,
		MinBytes:       1,
		MaxBytes:       1e6,
	})
	return newConsumer(reader)
}

func newConsumer(reader KafkaReader) *KafkaConsumer {
	return &KafkaConsumer{
		reader:      reader,
		doneChan:    make(chan struct{}),
		messageChan: make(chan kafka.Message),
	}
}

// Messages returns the channel of received messages. It is closed when the
// loop stops.
func (kc *KafkaConsumer) Messages() <-chan kafka.Message {
	return kc.messageChan
}

// CommitOffset marks msg as processed.
func (kc *KafkaConsumer) CommitOffset(ctx context.Context, msg kafka.Message) error {
	log.Debug().Str("topic", msg.Topic).Int("partition", msg.Partition).Int64("offset", msg.Offset).Msg("committing offset")
	return kc.reader.CommitMessages(ctx, msg)
}

// StartConsuming begins the Kafka message consumption loop in a separate goroutine.
func (kc *KafkaConsumer) StartConsuming(ctx context.Context) {
	kc.wg.Add(1)
	go func() {
		defer kc.wg.Done()
		defer close(kc.messageChan)

		log.Info().Msg("starting Kafka consumer loop")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("context canceled, stopping consumer loop")
				return
			case <-kc.doneChan:
				log.Info().Msg("shutdown signal received, stopping consumer loop")
				return
			default:
			}

			msg, err := kc.reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return
				}
				log.Warn().Err(err).Msg("error reading message")
				if graceful.Sleep(ctx, readBackoff) != nil {
					return
				}
				continue
			}

			select {
			case kc.messageChan <- msg:
				log.Debug().Str("topic", msg.Topic).Int("partition", msg.Partition).Int64("offset", msg.Offset).Msg("message received")
			case <-ctx.Done():
				return
			case <-kc.doneChan:
				return
			}
		}
	}()
}

// Stop gracefully shuts down the Kafka consumer.
func (kc *KafkaConsumer) Stop() {
	kc.stopOnce.Do(func() {
		close(kc.doneChan)
		kc.wg.Wait()
		if err := kc.reader.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close Kafka reader")
		}
		log.Info().Msg("Kafka consumer stopped")
	})
}
