package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/entitlement"
	"github.com/coursecast/coursecast/internal/gateway"
	"github.com/coursecast/coursecast/internal/settlement"
)

// MockSettlement implements settlement.Service for testing
type MockSettlement struct {
	mock.Mock
}

func (m *MockSettlement) InitiatePurchase(ctx context.Context, userID string, videoID int) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, userID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *MockSettlement) Settle(ctx context.Context, payment *domain.PaymentEvent) (*domain.Purchase, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockSettlement) RecordExternalPurchase(ctx context.Context, userID string, videoID int, reference string) (*domain.Purchase, error) {
	args := m.Called(ctx, userID, videoID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

var _ settlement.Service = (*MockSettlement)(nil)

// MockGateway implements gateway.Client for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amount int64, userID string, videoID int, creatorID string) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, amount, userID, videoID, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *MockGateway) VerifySignature(body []byte, signature string) bool {
	args := m.Called(body, signature)
	return args.Bool(0)
}

var _ gateway.Client = (*MockGateway)(nil)

// MockEntitlement implements entitlement.Service for testing
type MockEntitlement struct {
	mock.Mock
}

func (m *MockEntitlement) HasAccess(ctx context.Context, userID string, videoID int) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntitlement) AlreadyPurchased(ctx context.Context, userID string, videoID int) (bool, error) {
	args := m.Called(ctx, userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntitlement) InvalidateUser(userID string, videoID int) {
	m.Called(userID, videoID)
}

var _ entitlement.Service = (*MockEntitlement)(nil)
