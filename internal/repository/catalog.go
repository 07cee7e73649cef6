package repository

import (
	"context"

	"github.com/coursecast/coursecast/internal/domain"
)

// Catalog defines the interface for category and video data access
type Catalog interface {
	// Categories
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) (int, error)
	GetSubcategories(ctx context.Context) ([]domain.Subcategory, error)
	GetSubcategoriesByCategory(ctx context.Context, categoryID int) ([]domain.Subcategory, error)
	CreateSubcategory(ctx context.Context, subcategory *domain.Subcategory) (int, error)

	// Videos
	GetVideoByID(ctx context.Context, id int) (*domain.Video, error)
	GetPublishedVideos(ctx context.Context, limit int) ([]domain.Video, error)
	GetVideosByCategory(ctx context.Context, categoryID int) ([]domain.Video, error)
	GetVideosBySubcategory(ctx context.Context, subcategoryID int) ([]domain.Video, error)
	GetVideosByCreator(ctx context.Context, creatorID string) ([]domain.Video, error)
	SearchVideos(ctx context.Context, query string) ([]domain.Video, error)
	GetTrendingVideos(ctx context.Context, limit int) ([]domain.Video, error)
	CreateVideo(ctx context.Context, video *domain.Video) (int, error)
	UpdateVideo(ctx context.Context, video *domain.Video) error
	DeleteVideo(ctx context.Context, id int) error
	IncrementViews(ctx context.Context, id int) error

	// Counter reconciliation support: rebuild purchase counters from the ledger
	RecountPurchases(ctx context.Context) (int64, error)
}
