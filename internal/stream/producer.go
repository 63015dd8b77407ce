// Package stream carries inbound events and outbound feedback over Kafka.
package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

// Producer writes messages to the event bus. Messages default to the
// configured topic; Forward overrides it per message so retried events can
// be re-injected into their original destination.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
		topic: topic,
	}
}

// Write publishes a raw payload under the given key to the default topic.
func (p *Producer) Write(ctx context.Context, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write to %s: %w", p.topic, err)
	}
	return nil
}

// Forward re-injects an event into the given destination topic, keyed by
// vehicle so ordering per vehicle is preserved.
func (p *Producer) Forward(ctx context.Context, evt model.InboundEvent, destination string) error {
	if destination == "" {
		destination = p.topic
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", evt.ID, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: destination,
		Key:   []byte(evt.VehicleID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("forward to %s: %w", destination, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
