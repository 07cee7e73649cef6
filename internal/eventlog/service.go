package eventlog

import (
	"context"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/event"
	"github.com/coursecast/coursecast/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.Type(domain.EventTypePurchaseSettled),
		event.Type(domain.EventTypePurchaseDuplicate),
		event.Type(domain.EventTypeExternalPurchase),
		event.Type(domain.EventTypeVideoViewed),
		event.Type(domain.EventTypeSubscriptionActivated),
		event.Type(domain.EventTypeRoyaltyDistributed),
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload := payloadAsMap(evt.Payload)
	if payload == nil {
		log.Debug("Event payload not representable as map, skipping log", "type", evt.Type)
		return nil
	}

	var userID *string
	if uid, ok := payload["user_id"].(string); ok && uid != "" {
		userID = &uid
	}

	var metadata map[string]interface{}
	if m, ok := evt.Metadata.(map[string]interface{}); ok {
		metadata = m
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload, metadata); err != nil {
		log.Error("Failed to log event to database", "error", err, "type", evt.Type)
		return err
	}

	log.Debug("Event logged to database", "type", evt.Type, "user_id", userID)
	return nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
