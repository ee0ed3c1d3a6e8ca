package kafkaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
)

// mockReader simulates the kafka-go Reader for unit testing.
type mockReader struct {
	messages   chan kafka.Message
	commitChan chan kafka.Message
	wg         sync.WaitGroup
	isClosed   atomic.Bool
	failFirst  atomic.Bool
}

// newMockReader creates a new mock reader.
func newMockReader() *mockReader {
	return &mockReader{
		messages:   make(chan kafka.Message, 10),
		commitChan: make(chan kafka.Message, 10),
	}
}

// StartSimulatingConsumption simulates messages being produced to the reader.
func (mr *mockReader) StartSimulatingConsumption(count int) {
	mr.wg.Add(1)
	go func() {
		defer mr.wg.Done()
		defer close(mr.messages)

		for i := 0; i < count; i++ {
			msg := kafka.Message{
				Topic:     "test-topic",
				Partition: 0,
				Offset:    int64(i),
				Value:     []byte(fmt.Sprintf("mock-message-%d", i)),
			}
			mr.messages <- msg
			time.Sleep(10 * time.Millisecond)
		}
	}()
}

// ReadMessage simulates reading a message from the Kafka stream.
func (mr *mockReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if mr.isClosed.Load() {
		return kafka.Message{}, io.EOF
	}
	if mr.failFirst.CompareAndSwap(true, false) {
		return kafka.Message{}, errors.New("broker not available")
	}
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case msg, ok := <-mr.messages:
		if !ok {
			return kafka.Message{}, io.EOF
		}
		return msg, nil
	}
}

// CommitMessages simulates committing message offsets.
func (mr *mockReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	if mr.isClosed.Load() {
		return io.EOF
	}
	for _, msg := range msgs {
		mr.commitChan <- msg
	}
	return nil
}

// Close simulates closing the reader.
func (mr *mockReader) Close() error {
	mr.isClosed.Store(true)
	close(mr.commitChan)
	return nil
}

func TestKafkaConsumer_ConsumeAndCommit(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	mockReader := newMockReader()
	consumer := newConsumer(mockReader)

	const expectedMessages = 3
	mockReader.StartSimulatingConsumption(expectedMessages)
	consumer.StartConsuming(ctx)

	messagesReceived := 0
	for msg := range consumer.Messages() {
		expectedValue := fmt.Sprintf("mock-message-%d", messagesReceived)
		if string(msg.Value) != expectedValue {
			t.Errorf("Expected message value %q, got %q", expectedValue, string(msg.Value))
		}
		if err := consumer.CommitOffset(ctx, msg); err != nil {
			t.Errorf("CommitOffset() failed: %v", err)
		}
		messagesReceived++
	}

	if messagesReceived != expectedMessages {
		t.Errorf("Expected to receive %d messages, but got %d", expectedMessages, messagesReceived)
	}

	consumer.Stop()

	committedMessages := 0
	for range mockReader.commitChan {
		committedMessages++
	}
	if committedMessages != expectedMessages {
		t.Errorf("Expected to commit %d messages, but committed %d", expectedMessages, committedMessages)
	}
}

func TestKafkaConsumer_RetriesAfterReadError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	mockReader := newMockReader()
	mockReader.failFirst.Store(true)
	consumer := newConsumer(mockReader)

	mockReader.StartSimulatingConsumption(1)
	consumer.StartConsuming(ctx)

	select {
	case msg, ok := <-consumer.Messages():
		if !ok {
			t.Fatal("message channel closed after a transient read error")
		}
		if string(msg.Value) != "mock-message-0" {
			t.Errorf("got %q", msg.Value)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for message after retry")
	}
	consumer.Stop()
}

func TestKafkaConsumer_GracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	mockReader := newMockReader()
	consumer := newConsumer(mockReader)

	// The consumer should stop before consuming all of them.
	mockReader.StartSimulatingConsumption(100)
	consumer.StartConsuming(ctx)

	messagesConsumed := 0
	for i := 0; i < 5; i++ {
		select {
		case msg := <-consumer.Messages():
			t.Logf("Consumed message %d: %s", i, string(msg.Value))
			messagesConsumed++
		case <-ctx.Done():
			t.Fatal("Context canceled unexpectedly.")
		case <-time.After(500 * time.Millisecond):
			t.Fatal("Timed out while waiting for a message.")
		}
	}

	consumer.Stop()
	consumer.Stop()

	remainingMessages := 0
	for range consumer.Messages() {
		remainingMessages++
	}
	if remainingMessages > 0 {
		t.Errorf("Expected 0 messages after consumer stop, but found %d", remainingMessages)
	}
	if messagesConsumed < 5 {
		t.Errorf("Expected to consume at least 5 messages before stopping, but only consumed %d", messagesConsumed)
	}
	if !mockReader.isClosed.Load() {
		t.Error("Expected mock reader to be closed after consumer.Stop(), but it was not.")
	}
}
