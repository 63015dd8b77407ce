// Package worker fans inbound traffic out to a fixed set of workers.
// Events for the same recipient always land on the same worker, so the
// per-recipient ordering of the source topics survives the fan-out.
package worker

import (
	"context"
	"hash/fnv"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

type eventHandler interface {
	Handle(ctx context.Context, evt model.InboundEvent) error
}

type retryHandler interface {
	OnRetryMessage(ctx context.Context, msg model.RetryMessage) error
}

type inboundSource interface {
	Run(ctx context.Context, handle func(model.InboundEvent)) error
}

type callbackSource interface {
	Consume(out chan<- model.InboundEvent, strategy retry.Strategy) error
}

type retrySource interface {
	Consume(out chan<- model.RetryMessage, strategy retry.Strategy) error
}

type job struct {
	evt   *model.InboundEvent
	retry *model.RetryMessage
}

// Pool merges the inbound topic, the scheduler callbacks, and the retry
// stream into one partitioned set of workers.
type Pool struct {
	inbound   inboundSource
	callbacks callbackSource
	retries   retrySource
	events    eventHandler
	retryer   retryHandler
}

func NewPool(inbound inboundSource, callbacks callbackSource, retries retrySource, events eventHandler, retryer retryHandler) *Pool {
	return &Pool{
		inbound:   inbound,
		callbacks: callbacks,
		retries:   retries,
		events:    events,
		retryer:   retryer,
	}
}

// Run starts workerCount workers and blocks until ctx is canceled.
func (p *Pool) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	jobs := make([]chan job, workerCount)
	for i := range jobs {
		jobs[i] = make(chan job, 64)
	}

	dispatchEvent := func(evt model.InboundEvent) {
		e := evt
		jobs[partition(eventKey(evt), workerCount)] <- job{evt: &e}
	}

	go func() {
		if err := p.inbound.Run(ctx, dispatchEvent); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume inbound events")
		}
	}()

	callbackChan := make(chan model.InboundEvent)
	go func() {
		if err := p.callbacks.Consume(callbackChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume scheduler callbacks")
		}
	}()

	retryChan := make(chan model.RetryMessage)
	go func() {
		if err := p.retries.Consume(retryChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume retry stream")
		}
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt := <-callbackChan:
				dispatchEvent(evt)
			case msg := <-retryChan:
				m := msg
				jobs[partition(msg.Record.RequestID.String(), workerCount)] <- job{retry: &m}
			}
		}
	}()

	for i := 0; i < workerCount; i++ {
		go p.work(ctx, i, jobs[i])
	}

	<-ctx.Done()
	zlog.Logger.Print("worker pool stopped")
}

func (p *Pool) work(ctx context.Context, id int, jobs <-chan job) {
	zlog.Logger.Printf("worker-%d started", id)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Printf("worker-%d shutting down", id)
			return
		case j := <-jobs:
			switch {
			case j.evt != nil:
				if err := p.events.Handle(ctx, *j.evt); err != nil {
					zlog.Logger.Error().Err(err).
						Str("event_id", j.evt.ID).
						Str("kind", string(j.evt.Kind)).
						Msg("failed to handle event")
				}
			case j.retry != nil:
				if err := p.retryer.OnRetryMessage(ctx, *j.retry); err != nil {
					zlog.Logger.Error().Err(err).
						Str("request_id", j.retry.Record.RequestID.String()).
						Msg("failed to schedule retry")
				}
			}
		}
	}
}

// eventKey picks the partition key: recipient identity when present, the
// event id otherwise.
func eventKey(evt model.InboundEvent) string {
	if evt.VehicleID != "" || evt.UserID != "" {
		return evt.VehicleID + "|" + evt.UserID
	}
	return evt.ID
}

func partition(key string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}
