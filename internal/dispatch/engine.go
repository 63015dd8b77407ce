// Package dispatch is the top-level orchestrator: it classifies inbound
// events, resolves recipients and configs, applies mute/suppression/dedup
// per channel, invokes provider notifiers, and drives the history log and
// feedback emission.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/metrics"
	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/registry"
	"github.com/openfleet/alert-dispatcher/internal/repository/configstore"
)

//go:generate mockgen -source=engine.go -destination=../mocks/dispatch/mock.go -package=mocks

// ErrNotCancelable is returned when a cancel request hits a request that
// is not currently snoozed.
var ErrNotCancelable = errors.New("request is not in a cancelable state")

type deduper interface {
	ShouldProcess(ctx context.Context, evt model.InboundEvent) (bool, error)
}

type configSource interface {
	FindConfigs(ctx context.Context, userID, vehicleID, contactID, group string) ([]model.NotificationConfig, error)
	FindAllForRecipient(ctx context.Context, userID, vehicleID string) ([]model.NotificationConfig, error)
	ActiveMutes(ctx context.Context, vehicleID string, now time.Time) ([]model.MuteRecord, error)
}

type recipientSource interface {
	Resolve(ctx context.Context, vehicleID, userID string) (model.RecipientProfile, error)
	Associate(ctx context.Context, vehicleID, userID string) error
	Disassociate(ctx context.Context, vehicleID, userID string) error
}

// templateSource is the external template/message-resolution collaborator;
// it fills the request's message and subject in the recipient's locale.
type templateSource interface {
	Resolve(ctx context.Context, req *model.AlertRequest) error
}

type notifierSource interface {
	Resolve(ct model.ChannelType) (registry.Notifier, error)
	ResolveFor(ctx context.Context, ct model.ChannelType, notificationID, region string) (registry.Notifier, error)
	ListAll(ct model.ChannelType) []registry.Notifier
}

type historyLog interface {
	Start(ctx context.Context, req *model.AlertRequest) error
	Append(ctx context.Context, requestID uuid.UUID, status model.DeliveryStatus, correlationID string) error
	AppendRedelivery(ctx context.Context, requestID uuid.UUID, status model.DeliveryStatus, correlationID string) error
	RecordResponse(ctx context.Context, requestID uuid.UUID, resp model.ChannelResponse) error
	RecordSkip(ctx context.Context, requestID uuid.UUID, ct model.ChannelType, reason string) error
	Get(ctx context.Context, requestID uuid.UUID) (*model.AlertsHistoryInfo, error)
}

type snoozer interface {
	Snooze(ctx context.Context, req *model.AlertRequest, ch model.Channel, cfg model.NotificationConfig, delay time.Duration) error
	HandleAck(ctx context.Context, ack model.ScheduleAck) error
	HandleTimerFired(ctx context.Context, fired model.TimerFired) error
	HandleReconfigured(ctx context.Context, userID, vehicleID string) error
	CancelRequest(ctx context.Context, requestID uuid.UUID, correlationID string) error
}

type retrier interface {
	OnFailure(ctx context.Context, requestID uuid.UUID, evt model.InboundEvent, rerr *errs.RetryableError) error
	OnAck(ctx context.Context, ack model.ScheduleAck) error
	OnTimerFired(ctx context.Context, fired model.TimerFired) error
	ClearRequest(ctx context.Context, requestID uuid.UUID, kinds []string)
}

type campaignSource interface {
	Canceled(ctx context.Context, notificationID string) (bool, error)
	SetStatus(ctx context.Context, notificationID, status string) error
}

type feedbackEmitter interface {
	Emit(ctx context.Context, fb model.Feedback)
}

type suppressor interface {
	Match(configs []model.SuppressionConfig, timezone string, now time.Time) *model.SuppressionConfig
	QuietDuration(cfg model.SuppressionConfig, timezone string, now time.Time) (time.Duration, error)
}

// Deps bundles the engine's collaborators.
type Deps struct {
	Dedup       deduper
	Configs     configSource
	Recipients  recipientSource
	Templates   templateSource
	Notifiers   notifierSource
	History     historyLog
	Schedule    snoozer
	Retries     retrier
	Campaigns   campaignSource
	Feedback    feedbackEmitter
	Suppression suppressor
}

// Engine processes one inbound event to completion. Instances are safe for
// concurrent use; all mutable state lives in the stores behind the deps.
type Engine struct {
	deps         Deps
	inboundTopic string
	now          func() time.Time
}

// NewEngine builds the dispatch engine. inboundTopic names the destination
// retried events are re-injected into.
func NewEngine(deps Deps, inboundTopic string) *Engine {
	return &Engine{deps: deps, inboundTopic: inboundTopic, now: time.Now}
}

// Handle classifies and fully processes one inbound event. Composite
// events are flattened; a failing part never blocks its siblings.
func (e *Engine) Handle(ctx context.Context, evt model.InboundEvent) error {
	metrics.EventsConsumed.WithLabelValues(string(evt.Kind)).Inc()

	if len(evt.Nested) > 0 {
		for _, nested := range evt.Nested {
			if err := e.Handle(ctx, nested); err != nil {
				zlog.Logger.Error().Err(err).
					Str("event_id", nested.ID).
					Str("kind", string(nested.Kind)).
					Msg("failed to process nested event")
			}
		}
		return nil
	}

	switch evt.Kind {
	case model.EventScheduleAck:
		return e.handleScheduleAck(ctx, evt)
	case model.EventScheduledReady:
		return e.handleTimerFired(ctx, evt)
	case model.EventConfigSettingsChange, model.EventSecondaryContact:
		return e.deps.Schedule.HandleReconfigured(ctx, evt.UserID, evt.VehicleID)
	case model.EventProfileChange:
		return e.handleProfileChange(ctx, evt)
	case model.EventAssociation:
		return e.deps.Recipients.Associate(ctx, evt.VehicleID, evt.UserID)
	case model.EventDisassociation:
		return e.deps.Recipients.Disassociate(ctx, evt.VehicleID, evt.UserID)
	case model.EventDeliveryAck:
		return e.handleDeliveryAck(ctx, evt)
	case model.EventCampaignStatus:
		return e.handleCampaignStatus(ctx, evt)
	case model.EventBatch:
		return e.handleBatch(ctx, evt)
	}

	// ALERT, CAMPAIGN, PIN_GENERATED, and unknown kinds all run the plain
	// alert pipeline.
	return e.handleAlert(ctx, evt)
}

func (e *Engine) handleScheduleAck(ctx context.Context, evt model.InboundEvent) error {
	var ack model.ScheduleAck
	if err := json.Unmarshal(evt.Payload, &ack); err != nil {
		return fmt.Errorf("decode schedule ack: %w", err)
	}

	switch ack.Context {
	case model.TimerContextRetry:
		return e.deps.Retries.OnAck(ctx, ack)
	default:
		return e.deps.Schedule.HandleAck(ctx, ack)
	}
}

func (e *Engine) handleTimerFired(ctx context.Context, evt model.InboundEvent) error {
	var fired model.TimerFired
	if err := json.Unmarshal(evt.Payload, &fired); err != nil {
		return fmt.Errorf("decode timer notice: %w", err)
	}

	switch fired.Context {
	case model.TimerContextRetry:
		return e.deps.Retries.OnTimerFired(ctx, fired)
	default:
		return e.deps.Schedule.HandleTimerFired(ctx, fired)
	}
}

// handleProfileChange reruns one-time channel provisioning against every
// registered provider for the recipient's configured channels.
func (e *Engine) handleProfileChange(ctx context.Context, evt model.InboundEvent) error {
	if err := e.deps.Recipients.Disassociate(ctx, evt.VehicleID, evt.UserID); err != nil {
		zlog.Logger.Warn().Err(err).Str("vehicle_id", evt.VehicleID).Msg("failed to invalidate cached profile")
	}

	configs, err := e.deps.Configs.FindAllForRecipient(ctx, evt.UserID, evt.VehicleID)
	if err != nil {
		if errors.Is(err, configstore.ErrConfigNotFound) {
			return nil
		}
		return fmt.Errorf("load configs for provisioning: %w", err)
	}

	for _, cfg := range configs {
		for _, ch := range cfg.Channels {
			for _, n := range e.deps.Notifiers.ListAll(ch.Type) {
				if err := n.SetupChannel(ctx, cfg); err != nil {
					zlog.Logger.Error().Err(err).
						Str("channel", string(ch.Type)).
						Str("provider", n.Name()).
						Msg("channel provisioning failed")
				}
			}
		}
	}
	return nil
}

func (e *Engine) handleDeliveryAck(ctx context.Context, evt model.InboundEvent) error {
	var body struct {
		Channel model.ChannelType `json:"channel"`
	}
	if err := json.Unmarshal(evt.Payload, &body); err != nil {
		return fmt.Errorf("decode delivery ack: %w", err)
	}

	n, err := e.deps.Notifiers.Resolve(body.Channel)
	if err != nil {
		return fmt.Errorf("resolve notifier for ack: %w", err)
	}
	return n.ProcessAck(ctx, evt)
}

func (e *Engine) handleCampaignStatus(ctx context.Context, evt model.InboundEvent) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(evt.Payload, &body); err != nil {
		return fmt.Errorf("decode campaign status: %w", err)
	}
	return e.deps.Campaigns.SetStatus(ctx, evt.NotificationID, body.Status)
}

// handleBatch fans one event out to non-registered recipients, each with a
// synthetic config built from the contact data carried by the event. A
// failing recipient never aborts the rest of the batch.
func (e *Engine) handleBatch(ctx context.Context, evt model.InboundEvent) error {
	ok, err := e.shouldProcess(ctx, evt)
	if err != nil || !ok {
		return err
	}

	for _, rcpt := range evt.Recipients {
		cfg := batchConfig(evt, rcpt)
		if len(cfg.Channels) == 0 {
			zlog.Logger.Warn().Str("contact_id", rcpt.ContactID).Msg("batch recipient has no reachable contact data")
			continue
		}

		req := e.newRequest(evt, model.RecipientProfile{
			UserID:    evt.UserID,
			VehicleID: evt.VehicleID,
			ContactID: rcpt.ContactID,
			Locale:    rcpt.Locale,
			Email:     rcpt.Email,
			Phone:     rcpt.Phone,
			Consent:   true,
		})
		req.RequestID = uuid.Nil // one fresh history record per recipient

		if err := e.runPipeline(ctx, evt, req, []model.NotificationConfig{cfg}, false); err != nil {
			zlog.Logger.Error().Err(err).
				Str("event_id", evt.ID).
				Str("contact_id", rcpt.ContactID).
				Msg("batch recipient dispatch failed")
		}
	}
	return nil
}

func batchConfig(evt model.InboundEvent, rcpt model.BatchRecipient) model.NotificationConfig {
	cfg := model.NotificationConfig{
		UserID:    evt.UserID,
		VehicleID: evt.VehicleID,
		ContactID: rcpt.ContactID,
		Group:     model.GroupGeneral,
		Enabled:   true,
		Locale:    rcpt.Locale,
	}
	if rcpt.Email != "" {
		cfg.Channels = append(cfg.Channels, model.Channel{Type: model.ChannelEmail, Enabled: true, Destination: rcpt.Email})
	}
	if rcpt.Phone != "" {
		cfg.Channels = append(cfg.Channels, model.Channel{Type: model.ChannelSMS, Enabled: true, Destination: rcpt.Phone})
	}
	return cfg
}

// handleAlert is the plain-alert pipeline: dedup, recipient resolution,
// history attach, template resolution, consent/enablement gates, then the
// per-channel dispatch decision.
func (e *Engine) handleAlert(ctx context.Context, evt model.InboundEvent) error {
	ok, err := e.shouldProcess(ctx, evt)
	if err != nil || !ok {
		return err
	}

	profile, err := e.deps.Recipients.Resolve(ctx, evt.VehicleID, evt.UserID)
	if err != nil {
		req := e.newRequest(evt, model.RecipientProfile{UserID: evt.UserID, VehicleID: evt.VehicleID})
		if startErr := e.start(ctx, req); startErr == nil {
			e.finish(ctx, req, model.StatusFailed)
		}
		return err
	}

	req := e.newRequest(evt, profile)
	if err := e.start(ctx, req); err != nil {
		return err
	}

	if evt.Kind == model.EventCampaign {
		canceled, err := e.deps.Campaigns.Canceled(ctx, evt.NotificationID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("notification_id", evt.NotificationID).Msg("campaign status lookup failed")
		}
		if canceled {
			e.finish(ctx, req, model.StatusCanceled)
			return nil
		}
	}

	if err := e.deps.Templates.Resolve(ctx, req); err != nil {
		e.finish(ctx, req, model.StatusFailed)
		return fmt.Errorf("resolve template: %w", err)
	}

	if !profile.Consent {
		e.finish(ctx, req, model.StatusStoppedByConfig)
		return nil
	}

	contactID := profile.ContactID
	if contactID == "" {
		contactID = profile.UserID
	}
	configs, err := e.deps.Configs.FindConfigs(ctx, profile.UserID, profile.VehicleID, contactID, req.Group)
	if err != nil {
		if errors.Is(err, configstore.ErrConfigNotFound) {
			e.finish(ctx, req, model.StatusStoppedByConfig)
			return nil
		}
		e.finish(ctx, req, model.StatusFailed)
		return fmt.Errorf("load configs: %w", err)
	}

	enabled := make([]model.NotificationConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Enabled {
			enabled = append(enabled, cfg)
		}
	}
	if len(enabled) == 0 {
		e.finish(ctx, req, model.StatusStoppedByConfig)
		return nil
	}

	return e.runPipeline(ctx, evt, req, enabled, req.RequestID != uuid.Nil && evt.RequestID != "")
}

// runPipeline iterates configs x channels and closes the request when no
// channel is left pending on a timer or retry.
func (e *Engine) runPipeline(ctx context.Context, evt model.InboundEvent, req *model.AlertRequest, configs []model.NotificationConfig, redelivery bool) error {
	if err := e.start(ctx, req); err != nil {
		return err
	}
	req.Configs = configs

	mutes, err := e.deps.Configs.ActiveMutes(ctx, req.Profile.VehicleID, e.now())
	if err != nil {
		// Alerting outranks muting when the mute table is unreachable.
		zlog.Logger.Warn().Err(err).Str("vehicle_id", req.Profile.VehicleID).Msg("mute lookup failed, dispatching unmuted")
		mutes = nil
	}

	var out outcome
	for _, cfg := range configs {
		for _, ch := range cfg.Channels {
			if !ch.Enabled {
				continue
			}
			if err := e.dispatchChannel(ctx, evt, req, cfg, ch, mutes, &out); err != nil {
				out.skipped++
				metrics.DispatchOutcomes.WithLabelValues(string(ch.Type), "skipped").Inc()
				zlog.Logger.Error().Err(err).
					Str("request_id", req.RequestID.String()).
					Str("channel", string(ch.Type)).
					Msg("channel dispatch failed")
				if skipErr := e.deps.History.RecordSkip(ctx, req.RequestID, ch.Type, err.Error()); skipErr != nil {
					zlog.Logger.Error().Err(skipErr).Str("request_id", req.RequestID.String()).Msg("failed to record skipped channel")
				}
			}
		}
	}

	switch {
	case out.pending > 0:
		// Snoozed or retrying channels keep the request open; a later
		// timer-fired or re-injected event closes it.
		return nil
	case out.delivered > 0:
		e.clearRetryState(ctx, req.RequestID, redelivery)
		e.finishAs(ctx, req, model.StatusDone, redelivery)
	default:
		e.finishAs(ctx, req, model.StatusFailed, redelivery)
	}
	return nil
}

type outcome struct {
	delivered int
	pending   int
	skipped   int
}

func (e *Engine) dispatchChannel(ctx context.Context, evt model.InboundEvent, req *model.AlertRequest, cfg model.NotificationConfig, ch model.Channel, mutes []model.MuteRecord, out *outcome) error {
	now := e.now()

	for _, m := range mutes {
		if m.AppliesTo(ch.Type, cfg.Group, now) {
			out.skipped++
			metrics.DispatchOutcomes.WithLabelValues(string(ch.Type), "muted").Inc()
			reason := fmt.Sprintf("muted by record %s", m.ID)
			if err := e.deps.History.RecordSkip(ctx, req.RequestID, ch.Type, reason); err != nil {
				zlog.Logger.Error().Err(err).Str("request_id", req.RequestID.String()).Msg("failed to record mute skip")
			}
			return nil
		}
	}

	n, err := e.deps.Notifiers.ResolveFor(ctx, ch.Type, req.NotificationID, req.Profile.Region)
	if err != nil {
		return fmt.Errorf("resolve notifier: %w", err)
	}

	if match := e.deps.Suppression.Match(ch.Suppressions, req.Profile.Timezone, now); match != nil {
		delay, err := e.deps.Suppression.QuietDuration(*match, req.Profile.Timezone, now)
		if err != nil {
			return fmt.Errorf("compute quiet duration: %w", err)
		}
		if err := e.deps.Schedule.Snooze(ctx, req, ch, cfg, delay); err != nil {
			return fmt.Errorf("snooze: %w", err)
		}
		out.pending++
		metrics.DispatchOutcomes.WithLabelValues(string(ch.Type), "snoozed").Inc()
		return nil
	}

	started := e.now()
	resp, err := n.Publish(ctx, req, ch)
	metrics.PublishDuration.WithLabelValues(string(ch.Type), n.Name()).Observe(e.now().Sub(started).Seconds())
	if err != nil {
		if rerr, ok := errs.AsRetryable(err); ok {
			if ferr := e.deps.Retries.OnFailure(ctx, req.RequestID, evt, rerr); ferr != nil {
				return fmt.Errorf("request retry: %w", ferr)
			}
			out.pending++
			metrics.DispatchOutcomes.WithLabelValues(string(ch.Type), "retrying").Inc()
			metrics.RetryAttempts.WithLabelValues(rerr.Kind).Inc()
			return nil
		}
		return fmt.Errorf("publish via %s: %w", n.Name(), err)
	}

	if err := e.deps.History.RecordResponse(ctx, req.RequestID, resp); err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", req.RequestID.String()).Msg("failed to record channel response")
	}
	out.delivered++
	metrics.DispatchOutcomes.WithLabelValues(string(ch.Type), "delivered").Inc()
	return nil
}

// DispatchBuffered replays one frozen alert after its quiet time ended,
// bypassing re-suppression. Terminal statuses here open a new delivery
// context on the existing history record.
func (e *Engine) DispatchBuffered(ctx context.Context, alert model.BufferedAlert) error {
	req := &model.AlertRequest{
		RequestID:      alert.RequestID,
		EventID:        alert.EventID,
		NotificationID: alert.NotificationID,
		Group:          alert.Group,
		Profile:        alert.Profile,
		Message:        alert.Message,
		Subject:        alert.Subject,
		Payload:        alert.Payload,
		CreatedAt:      e.now(),
	}
	ch := model.Channel{Type: alert.Channel, Enabled: true, Destination: alert.Destination}

	n, err := e.deps.Notifiers.ResolveFor(ctx, alert.Channel, alert.NotificationID, alert.Profile.Region)
	if err != nil {
		e.closeRedelivery(ctx, req, alert.Channel, model.StatusFailed, err.Error())
		return fmt.Errorf("resolve notifier: %w", err)
	}

	resp, err := n.Publish(ctx, req, ch)
	if err != nil {
		if rerr, ok := errs.AsRetryable(err); ok {
			evt := model.InboundEvent{
				ID:             alert.EventID,
				Kind:           model.EventAlert,
				RequestID:      alert.RequestID.String(),
				VehicleID:      alert.Profile.VehicleID,
				UserID:         alert.Profile.UserID,
				NotificationID: alert.NotificationID,
				Group:          alert.Group,
				Destination:    e.inboundTopic,
				Timestamp:      e.now(),
				Payload:        alert.Payload,
			}
			if ferr := e.deps.Retries.OnFailure(ctx, alert.RequestID, evt, rerr); ferr != nil {
				return fmt.Errorf("request retry: %w", ferr)
			}
			metrics.RetryAttempts.WithLabelValues(rerr.Kind).Inc()
			return nil
		}
		e.closeRedelivery(ctx, req, alert.Channel, model.StatusFailed, err.Error())
		return fmt.Errorf("publish via %s: %w", n.Name(), err)
	}

	if err := e.deps.History.RecordResponse(ctx, alert.RequestID, resp); err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", alert.RequestID.String()).Msg("failed to record channel response")
	}
	metrics.BufferFlushes.Inc()
	e.finishAs(ctx, req, model.StatusDone, true)
	return nil
}

// CancelScheduled cancels one request's pending snooze. The request must
// currently be exactly SCHEDULED; anything else is rejected outright
// rather than treated as a no-op.
func (e *Engine) CancelScheduled(ctx context.Context, requestID uuid.UUID) error {
	info, err := e.deps.History.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	current := info.CurrentStatus()
	if current != model.StatusScheduled {
		return fmt.Errorf("cancel %s: %w, status is %s", requestID, ErrNotCancelable, current)
	}

	corr := ""
	for i := len(info.Statuses) - 1; i >= 0; i-- {
		if info.Statuses[i].Status == model.StatusScheduled {
			corr = info.Statuses[i].CorrelationID
			break
		}
	}
	if corr == "" {
		return fmt.Errorf("cancel %s: scheduled entry carries no correlation id", requestID)
	}

	if err := e.deps.Schedule.CancelRequest(ctx, requestID, corr); err != nil {
		return fmt.Errorf("cancel buffered alert: %w", err)
	}
	if err := e.deps.History.Append(ctx, requestID, model.StatusCanceled, corr); err != nil {
		return fmt.Errorf("append CANCELED: %w", err)
	}
	metrics.TerminalStatuses.WithLabelValues(string(model.StatusCanceled)).Inc()

	e.deps.Feedback.Emit(ctx, model.Feedback{
		RequestID:      requestID.String(),
		EventID:        info.EventID,
		NotificationID: info.NotificationID,
		UserID:         info.UserID,
		VehicleID:      info.VehicleID,
		Status:         model.StatusCanceled,
		Timestamp:      e.now(),
	})
	return nil
}

func (e *Engine) shouldProcess(ctx context.Context, evt model.InboundEvent) (bool, error) {
	ok, err := e.deps.Dedup.ShouldProcess(ctx, evt)
	if err != nil {
		// ShouldProcess lets events through on cache outages; the error is
		// informational.
		zlog.Logger.Warn().Err(err).Str("event_id", evt.ID).Msg("dedup check degraded")
	}
	if !ok {
		zlog.Logger.Debug().Str("event_id", evt.ID).Msg("duplicate or stale event dropped")
	}
	return ok, nil
}

// newRequest builds the in-flight request. A re-injected event carries the
// request id of the history record it continues.
func (e *Engine) newRequest(evt model.InboundEvent, profile model.RecipientProfile) *model.AlertRequest {
	group := evt.Group
	if group == "" {
		group = model.GroupGeneral
	}

	req := &model.AlertRequest{
		EventID:        evt.ID,
		NotificationID: evt.NotificationID,
		Group:          group,
		Profile:        profile,
		Payload:        evt.Payload,
		CreatedAt:      e.now(),
	}
	if evt.RequestID != "" {
		if id, err := uuid.Parse(evt.RequestID); err == nil {
			req.RequestID = id
		}
	}
	return req
}

// start creates the history record unless the request continues an
// existing one.
func (e *Engine) start(ctx context.Context, req *model.AlertRequest) error {
	if req.RequestID != uuid.Nil {
		return nil
	}
	if err := e.deps.History.Start(ctx, req); err != nil {
		return fmt.Errorf("start history: %w", err)
	}
	return nil
}

func (e *Engine) finish(ctx context.Context, req *model.AlertRequest, status model.DeliveryStatus) {
	e.finishAs(ctx, req, status, false)
}

func (e *Engine) finishAs(ctx context.Context, req *model.AlertRequest, status model.DeliveryStatus, redelivery bool) {
	append := e.deps.History.Append
	if redelivery {
		append = e.deps.History.AppendRedelivery
	}
	if err := append(ctx, req.RequestID, status, ""); err != nil {
		zlog.Logger.Error().Err(err).
			Str("request_id", req.RequestID.String()).
			Str("status", string(status)).
			Msg("failed to append terminal status")
	}
	metrics.TerminalStatuses.WithLabelValues(string(status)).Inc()

	e.deps.Feedback.Emit(ctx, model.Feedback{
		RequestID:      req.RequestID.String(),
		EventID:        req.EventID,
		NotificationID: req.NotificationID,
		UserID:         req.Profile.UserID,
		VehicleID:      req.Profile.VehicleID,
		Status:         status,
		Timestamp:      e.now(),
	})
}

func (e *Engine) closeRedelivery(ctx context.Context, req *model.AlertRequest, ct model.ChannelType, status model.DeliveryStatus, reason string) {
	if err := e.deps.History.RecordSkip(ctx, req.RequestID, ct, reason); err != nil {
		zlog.Logger.Error().Err(err).Str("request_id", req.RequestID.String()).Msg("failed to record skipped channel")
	}
	e.finishAs(ctx, req, status, true)
}

// clearRetryState drops cached retry counters once a redelivered request
// completes; the kinds come from the history's audit copies.
func (e *Engine) clearRetryState(ctx context.Context, requestID uuid.UUID, redelivery bool) {
	if !redelivery {
		return
	}
	info, err := e.deps.History.Get(ctx, requestID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("request_id", requestID.String()).Msg("failed to load history for retry cleanup")
		return
	}

	seen := make(map[string]struct{})
	var kinds []string
	for _, rec := range info.RetryRecords {
		if _, ok := seen[rec.Kind]; ok {
			continue
		}
		seen[rec.Kind] = struct{}{}
		kinds = append(kinds, rec.Kind)
	}
	if len(kinds) > 0 {
		e.deps.Retries.ClearRequest(ctx, requestID, kinds)
	}
}
