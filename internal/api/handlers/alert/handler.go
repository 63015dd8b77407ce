package alert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/api/dto"
	"github.com/openfleet/alert-dispatcher/internal/api/respond"
	"github.com/openfleet/alert-dispatcher/internal/dispatch"
	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/repository/historystore"
)

// eventInjector publishes an event onto the inbound topic so it flows
// through the same pipeline as bus traffic.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/mock.go -package=mocks
type eventInjector interface {
	Forward(ctx context.Context, evt model.InboundEvent, destination string) error
}

type historySource interface {
	Get(ctx context.Context, requestID uuid.UUID) (*model.AlertsHistoryInfo, error)
}

type alertCanceler interface {
	CancelScheduled(ctx context.Context, requestID uuid.UUID) error
}

// Handler handles HTTP requests related to alerts: manual injection,
// history lookup, and snooze cancellation.
type Handler struct {
	injector  eventInjector
	history   historySource
	canceler  alertCanceler
	validator *validator.Validate
	topic     string
	now       func() time.Time
}

func NewHandler(i eventInjector, h historySource, c alertCanceler, v *validator.Validate, topic string) *Handler {
	return &Handler{
		injector:  i,
		history:   h,
		canceler:  c,
		validator: v,
		topic:     topic,
		now:       time.Now,
	}
}

// Create handles HTTP POST requests to inject an alert event.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.InjectRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if req.VehicleID == "" && req.UserID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("vehicle_id or user_id is required"))
		return
	}

	kind := model.EventKind(req.Kind)
	if kind == "" {
		kind = model.EventAlert
	}

	evt := model.InboundEvent{
		ID:             uuid.NewString(),
		Kind:           kind,
		VehicleID:      req.VehicleID,
		UserID:         req.UserID,
		NotificationID: req.NotificationID,
		Group:          req.Group,
		Timestamp:      h.now(),
		Payload:        req.Payload,
	}

	if err := h.injector.Forward(c.Request.Context(), evt, h.topic); err != nil {
		zlog.Logger.Error().Err(err).Str("event_id", evt.ID).Msg("failed to inject event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, evt.ID)
}

// GetHistory handles HTTP GET requests for one request's delivery history.
func (h *Handler) GetHistory(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	info, err := h.history.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, historystore.ErrHistoryNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("alert history not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("alert history not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get alert history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, info)
}

// Cancel handles HTTP DELETE requests to cancel a snoozed alert.
func (h *Handler) Cancel(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.canceler.CancelScheduled(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, historystore.ErrHistoryNotFound):
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("alert history not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("alert not found"))
		case errors.Is(err, dispatch.ErrNotCancelable):
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("alert not cancelable")
			respond.Fail(c.Writer, http.StatusConflict, err)
		default:
			zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to cancel alert")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "alert canceled")
}
