package socialaccount

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/yashwanth-3000/content--hub/pkg/database"
	"github.com/yashwanth-3000/content--hub/pkg/models"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
)

// SocialAccountRepository defines the interface for social account cache operations
type SocialAccountRepository interface {
	Get(ctx context.Context, platform models.Platform, username string) (*models.SocialAccountRecord, error)
	Upsert(ctx context.Context, platform models.Platform, username string, rawContent json.RawMessage) (*models.SocialAccountRecord, error)
	UpdateContent(ctx context.Context, platform models.Platform, username string, content string) error
}

// Repository implements SocialAccountRepository
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new social account repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

const tableName = "social_accounts"

// Get fetches the cached record for a (platform, username) pair
func (r *Repository) Get(ctx context.Context, platform models.Platform, username string) (*models.SocialAccountRecord, error) {
	ctx, span := tracing.StartSpan(ctx, "SocialAccountRepository.Get")
	defer span.End()

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "platform", "username", "raw_content", "content", "created_at", "updated_at")
	sb.From(tableName)
	sb.Where(
		sb.Equal("platform", string(platform)),
		sb.Equal("username", username),
	)

	query, args := sb.BuildWithFlavor(sqlbuilder.PostgreSQL)

	var record models.SocialAccountRecord
	err := r.db.GetContext(ctx, &record, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error("failed to get social account")
		return nil, fmt.Errorf("failed to get social account: %w", err)
	}

	return &record, nil
}

// Upsert inserts the raw payload for a (platform, username) pair, replacing
// the payload if the pair already exists. The unique constraint makes this
// safe under concurrent fetches of the same identity.
func (r *Repository) Upsert(ctx context.Context, platform models.Platform, username string, rawContent json.RawMessage) (*models.SocialAccountRecord, error) {
	ctx, span := tracing.StartSpan(ctx, "SocialAccountRepository.Upsert")
	defer span.End()

	now := time.Now()
	id := uuid.New().String()

	ib := database.NewInsertBuilder()
	ib.InsertInto(tableName)
	ib.Cols("id", "platform", "username", "raw_content", "content", "created_at", "updated_at")
	ib.Values(id, string(platform), username, []byte(rawContent), "", now, now)

	ub := ib.OnConflict("platform", "username")
	ub.Set(
		ub.Assign("raw_content", database.Excluded("raw_content")),
		ub.Assign("updated_at", database.Excluded("updated_at")),
	)

	query, args := ib.Build()

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("failed to upsert social account")
		return nil, fmt.Errorf("failed to upsert social account: %w", err)
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{
		"platform": platform,
		"username": username,
	}).Info("upserted social account")

	return r.Get(ctx, platform, username)
}

// UpdateContent overwrites the user-editable content cache on a record
func (r *Repository) UpdateContent(ctx context.Context, platform models.Platform, username string, content string) error {
	ctx, span := tracing.StartSpan(ctx, "SocialAccountRepository.UpdateContent")
	defer span.End()

	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update(tableName)
	ub.Set(
		ub.Assign("content", content),
		ub.Assign("updated_at", time.Now()),
	)
	ub.Where(
		ub.Equal("platform", string(platform)),
		ub.Equal("username", username),
	)

	query, args := ub.BuildWithFlavor(sqlbuilder.PostgreSQL)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("failed to update social account content")
		return fmt.Errorf("failed to update social account content: %w", err)
	}

	return nil
}
