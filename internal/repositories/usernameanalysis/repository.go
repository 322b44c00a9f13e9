package usernameanalysis

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

// UsernameAnalysisRepository caches lightweight {heading, response} analyses
// keyed by username
type UsernameAnalysisRepository interface {
	Get(ctx context.Context, username string) (*models.UsernameAnalysis, error)
	Upsert(ctx context.Context, username string, content models.AnalysisContent) (*models.UsernameAnalysis, error)
}

// Repository implements UsernameAnalysisRepository
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new username analysis repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

const tableName = "username_analyses"

// Get fetches the cached analysis for a username
func (r *Repository) Get(ctx context.Context, username string) (*models.UsernameAnalysis, error) {
	ctx, span := tracing.StartSpan(ctx, "UsernameAnalysisRepository.Get")
	defer span.End()

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "username", "content", "created_at", "updated_at")
	sb.From(tableName)
	sb.Where(sb.Equal("username", username))

	query, args := sb.BuildWithFlavor(sqlbuilder.PostgreSQL)

	var record models.UsernameAnalysis
	err := r.db.GetContext(ctx, &record, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error("failed to get username analysis")
		return nil, fmt.Errorf("failed to get username analysis: %w", err)
	}

	return &record, nil
}

// Upsert stores the analysis for a username, replacing any previous one
func (r *Repository) Upsert(ctx context.Context, username string, content models.AnalysisContent) (*models.UsernameAnalysis, error) {
	ctx, span := tracing.StartSpan(ctx, "UsernameAnalysisRepository.Upsert")
	defer span.End()

	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis content: %w", err)
	}

	now := time.Now()
	id := uuid.New().String()

	ib := database.NewInsertBuilder()
	ib.InsertInto(tableName)
	ib.Cols("id", "username", "content", "created_at", "updated_at")
	ib.Values(id, username, string(data), now, now)

	ub := ib.OnConflict("username")
	ub.Set(
		ub.Assign("content", database.Excluded("content")),
		ub.Assign("updated_at", database.Excluded("updated_at")),
	)

	query, args := ib.Build()

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("failed to upsert username analysis")
		return nil, fmt.Errorf("failed to upsert username analysis: %w", err)
	}

	r.logger.WithContext(ctx).WithField("username", username).Info("upserted username analysis")

	return r.Get(ctx, username)
}
