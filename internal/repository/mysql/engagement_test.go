package mysql

import (
	"context"
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ashermunn/portfolio-backend/domain"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestEngagementExists(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewEngagementRepository(gdb)
	rec := domain.Engagement{PostID: 12, SessionID: "s1", Kind: domain.KindLike}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `engagement` WHERE post_id = \\? AND session_id = \\? AND kind = \\?").
		WithArgs(rec.PostID, rec.SessionID, string(rec.Kind)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `engagement`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	exists, err = repo.Exists(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementStoreDuplicate(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewEngagementRepository(gdb)
	rec := domain.Engagement{PostID: 12, SessionID: "s1", Kind: domain.KindLike, CreatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `engagement`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Store(context.Background(), rec))

	// the unique key on (post_id, session_id, kind) rejects the replay
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `engagement`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()
	assert.ErrorIs(t, repo.Store(context.Background(), rec), domain.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementRemove(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewEngagementRepository(gdb)
	rec := domain.Engagement{PostID: 12, SessionID: "s1", Kind: domain.KindBookmark}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `engagement` WHERE post_id = \\? AND session_id = \\? AND kind = \\?").
		WithArgs(rec.PostID, rec.SessionID, string(rec.Kind)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(t, repo.Remove(context.Background(), rec))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `engagement`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	assert.ErrorIs(t, repo.Remove(context.Background(), rec), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
