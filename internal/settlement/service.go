package settlement

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/event"
	"github.com/coursecast/coursecast/internal/gateway"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/metrics"
	"github.com/coursecast/coursecast/internal/repository"
)

// Service defines the interface for purchase settlement operations
type Service interface {
	// InitiatePurchase verifies the video is purchasable through the
	// platform and opens a payment intent with the gateway
	InitiatePurchase(ctx context.Context, userID string, videoID int) (*domain.PaymentIntent, error)

	// Settle turns a verified payment notification into a ledger row.
	// Safe to call any number of times per payment reference: only the
	// first call writes.
	Settle(ctx context.Context, payment *domain.PaymentEvent) (*domain.Purchase, error)

	// RecordExternalPurchase writes a zero-platform-share ledger row for
	// a premium purchase confirmed outside the platform
	RecordExternalPurchase(ctx context.Context, userID string, videoID int, reference string) (*domain.Purchase, error)
}

type service struct {
	ledger   repository.Ledger
	catalog  repository.Catalog
	users    repository.User
	gateway  gateway.Client
	bus      event.Bus
	validate *validator.Validate
}

// NewService creates a new settlement service
func NewService(ledger repository.Ledger, catalog repository.Catalog, users repository.User, gw gateway.Client, bus event.Bus) Service {
	return &service{
		ledger:   ledger,
		catalog:  catalog,
		users:    users,
		gateway:  gw,
		bus:      bus,
		validate: validator.New(),
	}
}

func (s *service) InitiatePurchase(ctx context.Context, userID string, videoID int) (*domain.PaymentIntent, error) {
	log := logger.FromContext(ctx)

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	video, err := s.catalog.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if !video.IsPublished {
		return nil, domain.ErrVideoUnpublished
	}
	if video.Tier != domain.TierBasic {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPlatformSettled, video.Tier)
	}
	if video.Price <= 0 {
		return nil, domain.ErrPriceNotSet
	}

	owned, err := s.ledger.HasPurchase(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, domain.ErrAlreadyPurchased
	}

	intent, err := s.gateway.CreateIntent(ctx, video.Price, userID, videoID, video.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	metrics.PurchasesInitiated.Inc()
	log.Info(LogMsgPurchaseInitiated,
		"userID", userID, "videoID", videoID, "amount", video.Price, "paymentRef", intent.PaymentRef)
	return intent, nil
}

func (s *service) Settle(ctx context.Context, payment *domain.PaymentEvent) (*domain.Purchase, error) {
	log := logger.FromContext(ctx)

	if err := s.validate.Struct(payment); err != nil {
		metrics.SettlementsRejected.WithLabelValues(RejectReasonInvalidEvent).Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	video, err := s.catalog.GetVideoByID(ctx, payment.VideoID)
	if err != nil {
		metrics.SettlementsRejected.WithLabelValues(RejectReasonVideoNotFound).Inc()
		log.Warn(LogMsgSettlementRejected, "reason", RejectReasonVideoNotFound, "paymentRef", payment.PaymentRef)
		return nil, err
	}

	if !video.IsPublished {
		metrics.SettlementsRejected.WithLabelValues(RejectReasonUnpublished).Inc()
		log.Warn(LogMsgSettlementRejected, "reason", RejectReasonUnpublished, "videoID", payment.VideoID, "paymentRef", payment.PaymentRef)
		return nil, domain.ErrVideoUnpublished
	}

	// Only basic-tier money flows through the platform. A payment event
	// for any other tier means someone is poking the webhook.
	if !video.Tier.PlatformSettled() {
		metrics.SettlementsRejected.WithLabelValues(RejectReasonWrongTier).Inc()
		log.Warn(LogMsgSettlementRejected, "reason", RejectReasonWrongTier, "tier", video.Tier, "paymentRef", payment.PaymentRef)
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPlatformSettled, video.Tier)
	}

	creatorCents, platformCents := SplitRevenue(payment.Amount)

	purchase := &domain.Purchase{
		UserID:           payment.UserID,
		VideoID:          payment.VideoID,
		PurchaseType:     domain.PurchaseTypeBasic,
		PriceAtPurchase:  payment.Amount,
		CreatorEarnings:  creatorCents,
		PlatformEarnings: platformCents,
		PaymentRef:       payment.PaymentRef,
	}

	inserted, err := s.ledger.SettlePurchase(ctx, purchase)
	if err != nil {
		return nil, fmt.Errorf("failed to settle purchase: %w", err)
	}

	if !inserted {
		// Redelivered notification. Return the row the first delivery
		// wrote so the caller sees the same outcome.
		metrics.DuplicateSettlements.Inc()
		log.Info(LogMsgDuplicateSettlement, "paymentRef", payment.PaymentRef)

		if err := s.bus.Publish(ctx, event.NewPurchaseDuplicateEvent(payment.UserID, payment.PaymentRef, payment.VideoID)); err != nil {
			log.Warn(LogMsgFailedToPublishEvent, "error", err)
		}

		existing, err := s.ledger.GetPurchaseByRef(ctx, payment.PaymentRef)
		if err != nil {
			return nil, err
		}
		return existing, nil
	}

	metrics.PurchasesSettled.WithLabelValues(string(video.Tier)).Inc()
	metrics.RevenueCents.WithLabelValues(metrics.ShareCreator).Add(float64(creatorCents))
	metrics.RevenueCents.WithLabelValues(metrics.SharePlatform).Add(float64(platformCents))

	if err := s.bus.Publish(ctx, event.NewPurchaseSettledEvent(*purchase, video.CreatorID, video.Tier)); err != nil {
		log.Warn(LogMsgFailedToPublishEvent, "error", err)
	}

	log.Info(LogMsgPurchaseSettled,
		"paymentRef", purchase.PaymentRef, "userID", purchase.UserID, "videoID", purchase.VideoID,
		"creatorEarnings", creatorCents, "platformEarnings", platformCents)
	return purchase, nil
}

func (s *service) RecordExternalPurchase(ctx context.Context, userID string, videoID int, reference string) (*domain.Purchase, error) {
	log := logger.FromContext(ctx)

	if reference == "" {
		return nil, fmt.Errorf("%w: missing reference", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	video, err := s.catalog.GetVideoByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.Tier != domain.TierPremium {
		return nil, fmt.Errorf("%w: external purchases are premium only", domain.ErrNotPlatformSettled)
	}

	// The platform never touched this money, so the whole external
	// price is the creator's and nothing is ours.
	purchase := &domain.Purchase{
		UserID:           userID,
		VideoID:          videoID,
		PurchaseType:     domain.PurchaseTypePremium,
		PriceAtPurchase:  video.ExternalPrice,
		CreatorEarnings:  video.ExternalPrice,
		PlatformEarnings: 0,
		PaymentRef:       reference,
	}

	inserted, err := s.ledger.SettlePurchase(ctx, purchase)
	if err != nil {
		return nil, fmt.Errorf("failed to record external purchase: %w", err)
	}
	if !inserted {
		existing, err := s.ledger.GetPurchaseByRef(ctx, reference)
		if err != nil {
			return nil, err
		}
		return existing, nil
	}

	metrics.PurchasesSettled.WithLabelValues(string(domain.TierPremium)).Inc()

	if err := s.bus.Publish(ctx, event.NewExternalPurchaseEvent(*purchase, video.CreatorID)); err != nil {
		log.Warn(LogMsgFailedToPublishEvent, "error", err)
	}

	log.Info(LogMsgExternalPurchase, "userID", userID, "videoID", videoID, "reference", reference)
	return purchase, nil
}
