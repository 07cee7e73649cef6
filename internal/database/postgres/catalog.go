package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coursecast/coursecast/internal/domain"
	"github.com/coursecast/coursecast/internal/repository"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{db: db}
}

// GetCategories returns all categories ordered by name
func (r *CatalogRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, slug, description, created_at
		FROM categories
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCategories, err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCategories, err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryBySlug returns one category by its URL slug
func (r *CatalogRepository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, slug, description, created_at
		FROM categories
		WHERE slug = $1
	`

	var c domain.Category
	err := r.db.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCategory, err)
	}
	return &c, nil
}

// CreateCategory inserts a category and returns its ID
func (r *CatalogRepository) CreateCategory(ctx context.Context, category *domain.Category) (int, error) {
	query := `
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING category_id
	`

	var id int
	err := r.db.QueryRow(ctx, query, category.Name, category.Slug, category.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertCategory, err)
	}
	return id, nil
}

// GetSubcategories returns all subcategories
func (r *CatalogRepository) GetSubcategories(ctx context.Context) ([]domain.Subcategory, error) {
	return r.querySubcategories(ctx, `
		SELECT subcategory_id, category_id, name, slug, description, created_at
		FROM subcategories
		ORDER BY category_id, name
	`)
}

// GetSubcategoriesByCategory returns the subcategories of one category
func (r *CatalogRepository) GetSubcategoriesByCategory(ctx context.Context, categoryID int) ([]domain.Subcategory, error) {
	return r.querySubcategories(ctx, `
		SELECT subcategory_id, category_id, name, slug, description, created_at
		FROM subcategories
		WHERE category_id = $1
		ORDER BY name
	`, categoryID)
}

func (r *CatalogRepository) querySubcategories(ctx context.Context, query string, args ...interface{}) ([]domain.Subcategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySubcategories, err)
	}
	defer rows.Close()

	var subcategories []domain.Subcategory
	for rows.Next() {
		var s domain.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Description, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySubcategories, err)
		}
		subcategories = append(subcategories, s)
	}
	return subcategories, rows.Err()
}

// CreateSubcategory inserts a subcategory and returns its ID
func (r *CatalogRepository) CreateSubcategory(ctx context.Context, subcategory *domain.Subcategory) (int, error) {
	query := `
		INSERT INTO subcategories (category_id, name, slug, description)
		VALUES ($1, $2, $3, $4)
		RETURNING subcategory_id
	`

	var id int
	err := r.db.QueryRow(ctx, query,
		subcategory.CategoryID, subcategory.Name, subcategory.Slug, subcategory.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertSubcategory, err)
	}
	return id, nil
}

const videoColumns = `video_id, creator_id, title, description, video_url, thumbnail_url,
		duration_minutes, COALESCE(category_id, 0), COALESCE(subcategory_id, 0),
		tier, price, external_payment_url, external_price, donated_to_streaming,
		views, purchases, likes, dislikes, is_published, is_featured, tags, language,
		created_at, updated_at`

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.ID, &v.CreatorID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
		&v.DurationMinutes, &v.CategoryID, &v.SubcategoryID,
		&v.Tier, &v.Price, &v.ExternalPaymentURL, &v.ExternalPrice, &v.DonatedToStreaming,
		&v.Views, &v.Purchases, &v.Likes, &v.Dislikes, &v.IsPublished, &v.IsFeatured,
		&v.Tags, &v.Language, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *CatalogRepository) queryVideos(ctx context.Context, query string, args ...interface{}) ([]domain.Video, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryVideos, err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryVideos, err)
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

// GetVideoByID fetches one video regardless of publication state
func (r *CatalogRepository) GetVideoByID(ctx context.Context, id int) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE video_id = $1`

	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetVideo, err)
	}
	return video, nil
}

// GetPublishedVideos returns the newest published videos
func (r *CatalogRepository) GetPublishedVideos(ctx context.Context, limit int) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE is_published ORDER BY created_at DESC LIMIT $1`
	return r.queryVideos(ctx, query, limit)
}

// GetVideosByCategory returns published videos in a category
func (r *CatalogRepository) GetVideosByCategory(ctx context.Context, categoryID int) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE is_published AND category_id = $1 ORDER BY created_at DESC`
	return r.queryVideos(ctx, query, categoryID)
}

// GetVideosBySubcategory returns published videos in a subcategory
func (r *CatalogRepository) GetVideosBySubcategory(ctx context.Context, subcategoryID int) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE is_published AND subcategory_id = $1 ORDER BY created_at DESC`
	return r.queryVideos(ctx, query, subcategoryID)
}

// GetVideosByCreator returns all of a creator's videos, drafts included
func (r *CatalogRepository) GetVideosByCreator(ctx context.Context, creatorID string) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE creator_id = $1 ORDER BY created_at DESC`
	return r.queryVideos(ctx, query, creatorID)
}

// SearchVideos matches published videos by title or description
func (r *CatalogRepository) SearchVideos(ctx context.Context, search string) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos
		WHERE is_published AND (title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY views DESC
		LIMIT 100`
	return r.queryVideos(ctx, query, search)
}

// GetTrendingVideos returns published videos ordered by recent views
func (r *CatalogRepository) GetTrendingVideos(ctx context.Context, limit int) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE is_published ORDER BY views DESC, likes DESC LIMIT $1`
	return r.queryVideos(ctx, query, limit)
}

// CreateVideo inserts a video and returns its ID
func (r *CatalogRepository) CreateVideo(ctx context.Context, video *domain.Video) (int, error) {
	query := `
		INSERT INTO videos (creator_id, title, description, video_url, thumbnail_url,
			duration_minutes, category_id, subcategory_id, tier, price,
			external_payment_url, external_price, donated_to_streaming,
			is_published, is_featured, tags, language)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, 0), NULLIF($8, 0), $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING video_id
	`

	if video.Language == "" {
		video.Language = "en"
	}
	if video.Tags == nil {
		video.Tags = []string{}
	}

	var id int
	err := r.db.QueryRow(ctx, query,
		video.CreatorID, video.Title, video.Description, video.VideoURL, video.ThumbnailURL,
		video.DurationMinutes, video.CategoryID, video.SubcategoryID, video.Tier, video.Price,
		video.ExternalPaymentURL, video.ExternalPrice, video.DonatedToStreaming,
		video.IsPublished, video.IsFeatured, video.Tags, video.Language,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertVideo, err)
	}
	return id, nil
}

// UpdateVideo rewrites a video's editable fields. Counters are not
// touched here; they move through their own increment paths.
func (r *CatalogRepository) UpdateVideo(ctx context.Context, video *domain.Video) error {
	query := `
		UPDATE videos
		SET title = $2, description = $3, video_url = $4, thumbnail_url = $5,
		    duration_minutes = $6, category_id = NULLIF($7, 0), subcategory_id = NULLIF($8, 0),
		    tier = $9, price = $10, external_payment_url = $11, external_price = $12,
		    donated_to_streaming = $13, is_published = $14, is_featured = $15,
		    tags = $16, language = $17, updated_at = NOW()
		WHERE video_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		video.ID, video.Title, video.Description, video.VideoURL, video.ThumbnailURL,
		video.DurationMinutes, video.CategoryID, video.SubcategoryID, video.Tier, video.Price,
		video.ExternalPaymentURL, video.ExternalPrice, video.DonatedToStreaming,
		video.IsPublished, video.IsFeatured, video.Tags, video.Language)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateVideo, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

// DeleteVideo removes a video and its dependent rows via cascades
func (r *CatalogRepository) DeleteVideo(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM videos WHERE video_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteVideo, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVideoNotFound
	}
	return nil
}

// IncrementViews bumps the view counter
func (r *CatalogRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE video_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToIncrementViews, err)
	}
	return nil
}

// RecountPurchases rebuilds every video's purchase counter from the
// ledger and returns how many rows changed
func (r *CatalogRepository) RecountPurchases(ctx context.Context) (int64, error) {
	query := `
		UPDATE videos v
		SET purchases = COALESCE(p.cnt, 0)
		FROM (SELECT video_id, COUNT(*) AS cnt FROM purchases GROUP BY video_id) p
		WHERE v.video_id = p.video_id AND v.purchases IS DISTINCT FROM p.cnt
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToRecountPurchases, err)
	}
	return result.RowsAffected(), nil
}
