// Package scheduler is the message-exchange client for the external timer
// service. Timers are created and deleted by publishing commands; firings
// and operation acks come back as independently dispatched inbound events.
package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

const (
	ExchangeName      = "scheduler-exchange"
	CommandQueueName  = "scheduler-commands"
	CallbackQueueName = "scheduler-callbacks"
	CommandRoutingKey = "scheduler"
)

// Command is one timer operation sent to the external scheduler.
type Command struct {
	Operation     model.ScheduleOp   `json:"operation"`
	RequestKey    string             `json:"request_key,omitempty"`
	CorrelationID string             `json:"correlation_id,omitempty"`
	Context       model.TimerContext `json:"context,omitempty"`
	DelayMs       int64              `json:"delay_ms,omitempty"`
	Payload       json.RawMessage    `json:"payload,omitempty"`
	Callback      string             `json:"callback,omitempty"`
	Replace       bool               `json:"replace,omitempty"`
	ReplacesID    string             `json:"replaces_id,omitempty"`
}

// callbackEnvelope is what the scheduler publishes onto the callback
// queue: either an operation ack or a timer firing.
type callbackEnvelope struct {
	Type  string             `json:"type"` // "ack" or "fired"
	Ack   *model.ScheduleAck `json:"ack,omitempty"`
	Fired *model.TimerFired  `json:"fired,omitempty"`
}

// Queue wires the command publisher and the callback consumer to one
// rabbitmq channel.
type Queue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewQueue declares the scheduler exchange and queues on the channel.
func NewQueue(ch *rabbitmq.Channel) (*Queue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	cmdQ, err := qm.DeclareQueue(CommandQueueName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare command queue: %w", err)
	}

	if err := ch.QueueBind(cmdQ.Name, CommandRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind command queue: %w", err)
	}

	cbQ, err := qm.DeclareQueue(CallbackQueueName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare callback queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(cbQ.Name))

	return &Queue{Publisher: pub, Consumer: cons}, nil
}

// Client issues timer operations through the scheduler queue.
type Client struct {
	queue    *Queue
	strategy retry.Strategy
}

// NewClient builds a scheduler client publishing with the given strategy.
func NewClient(q *Queue, strategy retry.Strategy) *Client {
	return &Client{queue: q, strategy: strategy}
}

// CreateTimer asks the scheduler to fire after delay, carrying payload
// back to the given callback context. The returned request key correlates
// the eventual ack with its originator; the scheduler's correlation id
// arrives only in the ack.
func (c *Client) CreateTimer(requestKey string, timerCtx model.TimerContext, payload json.RawMessage, delay time.Duration, callback string) error {
	cmd := Command{
		Operation:  model.ScheduleOpCreate,
		RequestKey: requestKey,
		Context:    timerCtx,
		DelayMs:    delay.Milliseconds(),
		Payload:    payload,
		Callback:   callback,
	}
	return c.publish(cmd)
}

// ReplaceTimer creates a fresh timer and flags the stale one for
// cancellation in the same command.
func (c *Client) ReplaceTimer(requestKey string, timerCtx model.TimerContext, payload json.RawMessage, delay time.Duration, callback, staleCorrelationID string) error {
	cmd := Command{
		Operation:  model.ScheduleOpCreate,
		RequestKey: requestKey,
		Context:    timerCtx,
		DelayMs:    delay.Milliseconds(),
		Payload:    payload,
		Callback:   callback,
		Replace:    true,
		ReplacesID: staleCorrelationID,
	}
	return c.publish(cmd)
}

// DeleteTimer cancels the timer referenced by the correlation id.
func (c *Client) DeleteTimer(correlationID string) error {
	cmd := Command{
		Operation:     model.ScheduleOpDelete,
		CorrelationID: correlationID,
	}
	return c.publish(cmd)
}

func (c *Client) publish(cmd Command) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal scheduler command: %w", err)
	}

	return c.queue.Publisher.PublishWithRetry(body, CommandRoutingKey, "application/json", c.strategy)
}

// Consume translates scheduler callbacks into inbound events and pushes
// them onto out, so resumption flows through the same worker pipeline as
// any other event.
func (q *Queue) Consume(out chan<- model.InboundEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for m := range msgChan {
			var env callbackEnvelope
			if err := json.Unmarshal(m, &env); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal scheduler callback")
				continue
			}

			evt, ok := translate(env)
			if !ok {
				zlog.Logger.Warn().Str("type", env.Type).Msg("scheduler callback with unknown type")
				continue
			}

			out <- evt
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func translate(env callbackEnvelope) (model.InboundEvent, bool) {
	switch {
	case env.Type == "ack" && env.Ack != nil:
		payload, _ := json.Marshal(env.Ack)
		return model.InboundEvent{
			ID:        uuid.NewString(),
			Kind:      model.EventScheduleAck,
			Timestamp: time.Now(),
			Payload:   payload,
		}, true

	case env.Type == "fired" && env.Fired != nil:
		payload, _ := json.Marshal(env.Fired)
		return model.InboundEvent{
			ID:        uuid.NewString(),
			Kind:      model.EventScheduledReady,
			Timestamp: time.Now(),
			Payload:   payload,
		}, true
	}

	return model.InboundEvent{}, false
}
