package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"workbook_service/pkg/retry"
)

type Config struct {
	Brokers         []string
	BreakerFailures int
	BreakerReset    time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes JSON events. Once the broker keeps failing the circuit
// opens and Publish fails fast until the reset timeout passes.
type Producer struct {
	writer  messageWriter
	breaker *retry.CircuitBreaker
}

func NewProducer(cfg Config) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return newProducer(writer, cfg)
}

func newProducer(writer messageWriter, cfg Config) *Producer {
	failures := cfg.BreakerFailures
	if failures <= 0 {
		failures = 5
	}
	reset := cfg.BreakerReset
	if reset <= 0 {
		reset = 30 * time.Second
	}
	return &Producer{
		writer:  writer,
		breaker: retry.NewCircuitBreaker(failures, reset, retry.Always),
	}
}

func (p *Producer) Publish(ctx context.Context, topic string, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	err = p.breaker.Execute(func() error {
		return p.writer.WriteMessages(ctx, message)
	})
	if err != nil {
		return fmt.Errorf("failed to write message to %s: %w", topic, err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
