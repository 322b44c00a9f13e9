package publishedpost

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashwanth-3000/content--hub/pkg/database"
	"github.com/yashwanth-3000/content--hub/pkg/logging"
	"github.com/yashwanth-3000/content--hub/pkg/models"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	logger := logging.NewNop()
	db := database.NewDatabaseInstance(sqlx.NewDb(mockDB, "sqlmock"), logger)
	return NewRepository(db, logger), mock
}

func postColumns() []string {
	return []string{"id", "platform", "username", "content", "img_url", "created_at"}
}

func TestCreate(t *testing.T) {
	repo, mock := newTestRepository(t)

	imgURL := "https://cdn.example.com/a.png"
	mock.ExpectExec("INSERT INTO published_posts").
		WithArgs(sqlmock.AnyArg(), "twitter", "jane", "hello world", &imgURL, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	post, err := repo.Create(context.Background(), models.CreatePublishedPostRequest{
		Platform: models.PlatformTwitter,
		Username: "jane",
		Content:  "hello world",
		ImgURL:   &imgURL,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PlatformTwitter, post.Platform)
	assert.Equal(t, "jane", post.Username)
	assert.Equal(t, "hello world", post.Content)
	require.NotNil(t, post.ImgURL)
	assert.Equal(t, imgURL, *post.ImgURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersNewestFirst(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("FROM published_posts ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(postColumns()).
			AddRow("post-2", "twitter", "jane", "newest", nil, now).
			AddRow("post-1", "twitter", "jane", "oldest", nil, now.Add(-time.Hour)))

	items, totalCount, err := repo.List(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 2, totalCount)
	require.Len(t, items, 2)
	assert.Equal(t, "newest", items[0].Content)
	assert.Equal(t, "oldest", items[1].Content)
	assert.True(t, items[0].CreatedAt.After(items[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFiltersByPlatform(t *testing.T) {
	repo, mock := newTestRepository(t)

	platform := models.PlatformLinkedIn
	mock.ExpectQuery("SELECT COUNT.+WHERE platform = \\$1").
		WithArgs("linkedin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("WHERE platform = \\$1 ORDER BY created_at DESC").
		WithArgs("linkedin").
		WillReturnRows(sqlmock.NewRows(postColumns()).
			AddRow("post-1", "linkedin", "jane", "a post", nil, time.Now().UTC()))

	items, totalCount, err := repo.List(context.Background(), &platform)

	require.NoError(t, err)
	assert.Equal(t, 1, totalCount)
	require.Len(t, items, 1)
	assert.Equal(t, models.PlatformLinkedIn, items[0].Platform)
	assert.NoError(t, mock.ExpectationsWereMet())
}
