package domain

import "time"

// Video represents an uploaded course video.
// Counters (views, purchases, likes, dislikes) are denormalized caches;
// the purchase ledger is the source of truth for revenue figures.
type Video struct {
	ID              int       `json:"id" db:"video_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	VideoURL        string    `json:"video_url" db:"video_url"`
	ThumbnailURL    string    `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	CategoryID      int       `json:"category_id" db:"category_id"`
	SubcategoryID   int       `json:"subcategory_id" db:"subcategory_id"`
	CreatorID       string    `json:"creator_id" db:"creator_id"`
	Tier            Tier      `json:"tier" db:"tier"`
	Price           int64     `json:"price" db:"price"` // cents, basic tier only
	ExternalPaymentURL string `json:"external_payment_url,omitempty" db:"external_payment_url"`
	ExternalPrice   int64     `json:"external_price,omitempty" db:"external_price"` // cents, premium tier
	DonatedToStreaming bool   `json:"donated_to_streaming" db:"donated_to_streaming"`
	Views           int       `json:"views" db:"views"`
	Purchases       int       `json:"purchases" db:"purchases"`
	Likes           int       `json:"likes" db:"likes"`
	Dislikes        int       `json:"dislikes" db:"dislikes"`
	IsPublished     bool      `json:"is_published" db:"is_published"`
	IsFeatured      bool      `json:"is_featured" db:"is_featured"`
	Tags            []string  `json:"tags,omitempty" db:"tags"`
	Language        string    `json:"language" db:"language"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Purchasable reports whether the video can be bought through the
// platform settlement path right now.
func (v *Video) Purchasable() bool {
	return v.IsPublished && v.Tier == TierBasic && v.Price > 0
}
