package repository

import (
	"context"
	"regexp"
	"testing"

	"wenda/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAnswerRepository_CountByQuestion(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnswerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "answers" WHERE question_id = $1 AND is_valid = $2`)).
		WithArgs(3, true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByQuestion(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnswerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "answers" WHERE "answers"."id" = $1 ORDER BY "answers"."id" LIMIT $2`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), 99)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnswerRepository_FirstByQuestion_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnswerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "answers" WHERE question_id = $1 AND is_valid = $2 ORDER BY created_at ASC,"answers"."id" LIMIT $3`)).
		WithArgs(3, true, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	answer, err := repo.FirstByQuestion(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, answer)
	assert.NoError(t, mock.ExpectationsWereMet())
}
