package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/luct-ict/reporting-api/internal/models"
)

func newFeedbackRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestFeedbackRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newFeedbackRepoMock(t)
	defer cleanup()

	repo := NewFeedbackRepository(db)
	rating := 4
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO feedback")).
		WithArgs(int64(21), int64(8), "Good coverage of the outline", 4, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	feedback := &models.Feedback{
		ReportID:            21,
		PrincipalLecturerID: 8,
		FeedbackText:        "Good coverage of the outline",
		Rating:              &rating,
	}
	require.NoError(t, repo.Create(context.Background(), feedback))
	require.Equal(t, int64(2), feedback.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepositoryFindByReport(t *testing.T) {
	db, mock, cleanup := newFeedbackRepoMock(t)
	defer cleanup()

	repo := NewFeedbackRepository(db)
	rows := sqlmock.NewRows([]string{"id", "report_id", "principal_lecturer_id", "feedback_text", "rating", "created_at", "principal_lecturer_name"}).
		AddRow(int64(2), int64(21), int64(8), "Good coverage of the outline", 4, time.Now(), "Dr. Molefi").
		AddRow(int64(1), int64(21), int64(8), "Needs a worked example", nil, time.Now().Add(-time.Hour), "Dr. Molefi")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE f.report_id = $1")).
		WithArgs(int64(21)).
		WillReturnRows(rows)

	feedback, err := repo.FindByReport(context.Background(), 21)
	require.NoError(t, err)
	require.Len(t, feedback, 2)
	require.Equal(t, "Dr. Molefi", feedback[0].PrincipalLecturerName)
	require.NotNil(t, feedback[0].Rating)
	require.Nil(t, feedback[1].Rating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newFeedbackRepoMock(t)
	defer cleanup()

	repo := NewFeedbackRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE feedback SET feedback_text = $2, rating = $3 WHERE id = $1")).
		WithArgs(int64(99), "updated", nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Update(context.Background(), 99, "updated", nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
