package publishedpost

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/yashwanth-3000/content--hub/pkg/database"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

// PublishedPostRepository defines the interface for the published post gallery
type PublishedPostRepository interface {
	Create(ctx context.Context, req models.CreatePublishedPostRequest) (*models.PublishedPost, error)
	List(ctx context.Context, platform *models.Platform) ([]models.PublishedPost, int, error)
}

// Repository implements PublishedPostRepository
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new published post repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

const tableName = "published_posts"

// Create inserts a published post. Rows are immutable after this point.
func (r *Repository) Create(ctx context.Context, req models.CreatePublishedPostRequest) (*models.PublishedPost, error) {
	ctx, span := tracing.StartSpan(ctx, "PublishedPostRepository.Create")
	defer span.End()

	now := time.Now()
	id := uuid.New().String()

	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto(tableName)
	ib.Cols("id", "platform", "username", "content", "img_url", "created_at")
	ib.Values(id, string(req.Platform), req.Username, req.Content, req.ImgURL, now)

	query, args := ib.BuildWithFlavor(sqlbuilder.PostgreSQL)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("failed to create published post")
		return nil, fmt.Errorf("failed to create published post: %w", err)
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"id":       id,
		"platform": req.Platform,
		"username": req.Username,
	}).Info("created published post")

	return &models.PublishedPost{
		ID:        id,
		Platform:  req.Platform,
		Username:  req.Username,
		Content:   req.Content,
		ImgURL:    req.ImgURL,
		CreatedAt: now,
	}, nil
}

// List returns published posts newest first, optionally filtered by platform
func (r *Repository) List(ctx context.Context, platform *models.Platform) ([]models.PublishedPost, int, error) {
	ctx, span := tracing.StartSpan(ctx, "PublishedPostRepository.List")
	defer span.End()

	countSb := sqlbuilder.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From(tableName)
	if platform != nil {
		countSb.Where(countSb.Equal("platform", string(*platform)))
	}
	countQuery, countArgs := countSb.BuildWithFlavor(sqlbuilder.PostgreSQL)

	var totalCount int
	err := r.db.GetContext(ctx, &totalCount, countQuery, countArgs...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("failed to count published posts")
		return nil, 0, fmt.Errorf("failed to count published posts: %w", err)
	}

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "platform", "username", "content", "img_url", "created_at")
	sb.From(tableName)
	if platform != nil {
		sb.Where(sb.Equal("platform", string(*platform)))
	}
	sb.OrderBy("created_at DESC")

	query, args := sb.BuildWithFlavor(sqlbuilder.PostgreSQL)

	var items []models.PublishedPost
	err = r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("failed to list published posts")
		return nil, 0, fmt.Errorf("failed to list published posts: %w", err)
	}

	return items, totalCount, nil
}
