package domain

import "time"

// Purchase type tags recorded on ledger rows.
const (
	PurchaseTypeBasic    = "basic"
	PurchaseTypePremium  = "premium"
	PurchaseTypeStreaming = "streaming_subscription"
)

// Purchase is an immutable revenue ledger entry. Rows are created exactly
// once per successful payment and never updated or deleted.
// Invariant: CreatorEarnings + PlatformEarnings == PriceAtPurchase.
type Purchase struct {
	ID               int64     `json:"id" db:"purchase_id"`
	UserID           string    `json:"user_id" db:"user_id"`
	VideoID          int       `json:"video_id" db:"video_id"`
	PurchaseType     string    `json:"purchase_type" db:"purchase_type"`
	PriceAtPurchase  int64     `json:"price_at_purchase" db:"price_at_purchase"`
	CreatorEarnings  int64     `json:"creator_earnings" db:"creator_earnings"`
	PlatformEarnings int64     `json:"platform_earnings" db:"platform_earnings"`
	PaymentRef       string    `json:"payment_ref" db:"payment_ref"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// PaymentEvent is an incoming payment-completion notification from the
// gateway webhook. Untrusted input: validated before settlement.
type PaymentEvent struct {
	PaymentRef string `json:"payment_ref" validate:"required"`
	Amount     int64  `json:"amount" validate:"required,gt=0"` // minor units
	UserID     string `json:"user_id" validate:"required"`
	VideoID    int    `json:"video_id" validate:"required,gt=0"`
	CreatorID  string `json:"creator_id" validate:"required"`
}

// PaymentIntent is the handle returned when a purchase is initiated.
type PaymentIntent struct {
	PaymentRef   string `json:"payment_ref"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
}
