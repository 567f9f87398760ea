package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/events"
	"github.com/spec-kit/admin-dashboard/internal/observability"
)

// EventPublisher forwards serialized events to an external channel.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// AuditService records every slice transition: it logs the event, counts it
// and, when a publisher is configured, fans it out to other consumers.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	publisher  EventPublisher
	channel    string
}

// NewAuditService creates the service. publisher may be nil.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics, publisher EventPublisher, channel string) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
		publisher:  publisher,
		channel:    channel,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, t := range events.AllEventTypes {
		a.dispatcher.Subscribe(t, a.handleTransition)
	}
}

func (a *AuditService) handleTransition(ctx context.Context, event events.Event) error {
	a.logger.Info("SliceTransition",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("slice", event.Slice),
		zap.String("status", string(event.Status)),
		zap.Any("payload", event.Payload))
	a.metrics.RecordTransition(event.Slice, string(event.Type))
	a.forward(ctx, event)
	return nil
}

// forward never fails the transition; a broken fan-out only costs a warning.
func (a *AuditService) forward(ctx context.Context, event events.Event) {
	if a.publisher == nil || strings.TrimSpace(a.channel) == "" {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		a.logger.Warn("encode event", zap.String("event_id", event.ID), zap.Error(err))
		return
	}
	if err := a.publisher.Publish(ctx, a.channel, body); err != nil {
		a.logger.Warn("publish event",
			zap.String("channel", a.channel),
			zap.String("event_id", event.ID),
			zap.Error(err))
		return
	}
	a.logger.Debug("event published", zap.String("channel", a.channel), zap.String("event_id", event.ID))
}
