package stream

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

// Consumer reads inbound events from one topic as part of a consumer group.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MaxBytes: 10e6, // 10MB
		}),
	}
}

// Run reads messages until ctx is canceled, decoding each into an
// InboundEvent and handing it to handle. Undecodable messages are logged
// and dropped.
func (c *Consumer) Run(ctx context.Context, handle func(model.InboundEvent)) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		var evt model.InboundEvent
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			zlog.Logger.Error().Err(err).
				Str("topic", m.Topic).
				Int64("offset", m.Offset).
				Msg("failed to decode inbound event")
			continue
		}

		handle(evt)
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
