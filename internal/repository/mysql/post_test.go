package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/ashermunn/portfolio-backend/domain"
)

func TestPostGetByID(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewPostRepository(gdb)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "title", "slug", "content", "tags", "status", "views", "likes_count", "created_at",
	}).AddRow(12, "Hello", "hello", "body", "go,web", "published", 7, 2, now)

	mock.ExpectQuery("SELECT \\* FROM `post` WHERE id = \\?").
		WillReturnRows(rows)

	post, err := repo.GetByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), post.ID)
	assert.Equal(t, "hello", post.Slug)
	assert.Equal(t, []string{"go", "web"}, post.Tags)
	assert.Equal(t, domain.PostStatusPublished, post.Status)
	assert.Equal(t, int64(2), post.LikesCount)

	mock.ExpectQuery("SELECT \\* FROM `post` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostFetchRejectsBadCursor(t *testing.T) {
	gdb, _ := setupMockDB(t)
	repo := NewPostRepository(gdb)

	_, err := repo.Fetch(context.Background(), "this is not a cursor", 10)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestPostAddEngagementCountClamps(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewPostRepository(gdb)

	// current likes_count is 0, a -1 shift clamps to 0 instead of -1
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `likes_count` FROM `post` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"likes_count"}).AddRow(0))
	mock.ExpectExec("UPDATE `post` SET `likes_count`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := repo.AddEngagementCount(context.Background(), 12, domain.KindLike, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostAddComments(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewPostRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `post` SET `comments_count`=GREATEST\\(comments_count \\+ \\?, 0\\)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.AddComments(context.Background(), 12, 1))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `post` SET `comments_count`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	assert.ErrorIs(t, repo.AddComments(context.Background(), 99, 1), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
