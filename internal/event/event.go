package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coursecast/coursecast/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	PurchaseSettled       Type = Type(domain.EventTypePurchaseSettled)
	PurchaseDuplicate     Type = Type(domain.EventTypePurchaseDuplicate)
	ExternalPurchase      Type = Type(domain.EventTypeExternalPurchase)
	VideoViewed           Type = Type(domain.EventTypeVideoViewed)
	SubscriptionActivated Type = Type(domain.EventTypeSubscriptionActivated)
	RoyaltyDistributed    Type = Type(domain.EventTypeRoyaltyDistributed)
)

// Typed event payloads for type safety

// PurchaseSettledPayloadV1 is the typed payload for settled purchases
type PurchaseSettledPayloadV1 struct {
	UserID           string `json:"user_id"`
	VideoID          int    `json:"video_id"`
	CreatorID        string `json:"creator_id"`
	Tier             string `json:"tier"`
	PaymentRef       string `json:"payment_ref"`
	PriceAtPurchase  int64  `json:"price_at_purchase"`
	CreatorEarnings  int64  `json:"creator_earnings"`
	PlatformEarnings int64  `json:"platform_earnings"`
	Timestamp        int64  `json:"timestamp"`
}

// VideoViewedPayloadV1 is the typed payload for view events
type VideoViewedPayloadV1 struct {
	UserID    string `json:"user_id,omitempty"`
	VideoID   int    `json:"video_id"`
	Timestamp int64  `json:"timestamp"`
}

// SubscriptionActivatedPayloadV1 is the typed payload for streaming subscriptions
type SubscriptionActivatedPayloadV1 struct {
	UserID      string `json:"user_id"`
	TrialEndsAt int64  `json:"trial_ends_at"`
	Timestamp   int64  `json:"timestamp"`
}

// RoyaltyDistributedPayloadV1 is the typed payload for monthly royalty runs
type RoyaltyDistributedPayloadV1 struct {
	Month          string `json:"month"`
	PoolCents      int64  `json:"pool_cents"`
	PaidCents      int64  `json:"paid_cents"`
	CreatorsPaid   int    `json:"creators_paid"`
	Timestamp      int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewPurchaseSettledEvent creates a new purchase settled event with type-safe payload
func NewPurchaseSettledEvent(p domain.Purchase, creatorID string, tier domain.Tier) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PurchaseSettled,
		Payload: PurchaseSettledPayloadV1{
			UserID:           p.UserID,
			VideoID:          p.VideoID,
			CreatorID:        creatorID,
			Tier:             string(tier),
			PaymentRef:       p.PaymentRef,
			PriceAtPurchase:  p.PriceAtPurchase,
			CreatorEarnings:  p.CreatorEarnings,
			PlatformEarnings: p.PlatformEarnings,
			Timestamp:        time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPurchaseDuplicateEvent records an ignored redelivery of a payment
// notification. The payload carries only the reference, not amounts,
// since no money moved.
func NewPurchaseDuplicateEvent(userID, paymentRef string, videoID int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PurchaseDuplicate,
		Payload: PurchaseSettledPayloadV1{
			UserID:     userID,
			VideoID:    videoID,
			PaymentRef: paymentRef,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewExternalPurchaseEvent records a premium purchase confirmed out of
// band. No platform share exists for these.
func NewExternalPurchaseEvent(p domain.Purchase, creatorID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ExternalPurchase,
		Payload: PurchaseSettledPayloadV1{
			UserID:          p.UserID,
			VideoID:         p.VideoID,
			CreatorID:       creatorID,
			Tier:            string(domain.TierPremium),
			PaymentRef:      p.PaymentRef,
			PriceAtPurchase: p.PriceAtPurchase,
			CreatorEarnings: p.CreatorEarnings,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewVideoViewedEvent creates a new video viewed event
func NewVideoViewedEvent(userID string, videoID int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    VideoViewed,
		Payload: VideoViewedPayloadV1{
			UserID:    userID,
			VideoID:   videoID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSubscriptionActivatedEvent creates a new streaming subscription event
func NewSubscriptionActivatedEvent(userID string, trialEndsAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SubscriptionActivated,
		Payload: SubscriptionActivatedPayloadV1{
			UserID:      userID,
			TrialEndsAt: trialEndsAt.Unix(),
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRoyaltyDistributedEvent creates a new royalty distribution event
func NewRoyaltyDistributedEvent(month string, poolCents, paidCents int64, creatorsPaid int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoyaltyDistributed,
		Payload: RoyaltyDistributedPayloadV1{
			Month:        month,
			PoolCents:    poolCents,
			PaidCents:    paidCents,
			CreatorsPaid: creatorsPaid,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; settlement does not depend on any of
	// them succeeding.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
