package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/luct-ict/reporting-api/internal/models"
)

var reportDetailColumns = []string{
	"id", "faculty_name", "class_id", "course_id", "lecturer_id",
	"week_of_reporting", "date_of_lecture", "actual_students_present", "venue",
	"scheduled_lecture_time", "topic_taught", "learning_outcomes", "recommendations", "created_at",
	"course_code", "course_name", "class_name", "lecturer_name",
}

func newReportRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func reportDetailRow(rows *sqlmock.Rows, id int64, lecturerID int64) *sqlmock.Rows {
	return rows.AddRow(id, "ICT", int64(1), int64(2), lecturerID,
		"Week 6", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 38, "Room 5",
		"08:00:00", "REST APIs", "Build a REST endpoint", "More lab time", time.Now(),
		"DIWA2110", "Web Application Development", "BSCITY2S1", "Jane Tau")
}

func TestReportRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reports")).
		WithArgs("ICT", int64(1), int64(2), int64(3),
			"Week 6", sqlmock.AnyArg(), 38, "Room 5",
			"08:00:00", "REST APIs", "Build a REST endpoint", "More lab time", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(21)))

	report := &models.Report{
		FacultyName:           "ICT",
		ClassID:               1,
		CourseID:              2,
		LecturerID:            3,
		WeekOfReporting:       "Week 6",
		DateOfLecture:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ActualStudentsPresent: 38,
		Venue:                 "Room 5",
		ScheduledLectureTime:  "08:00:00",
		TopicTaught:           "REST APIs",
		LearningOutcomes:      "Build a REST endpoint",
		Recommendations:       "More lab time",
	}
	require.NoError(t, repo.Create(context.Background(), report))
	require.Equal(t, int64(21), report.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery("SELECT r.id, r.faculty_name").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestReportRepositoryFindByLecturer(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := sqlmock.NewRows(reportDetailColumns)
	reportDetailRow(rows, 21, 3)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.lecturer_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	reports, err := repo.FindByLecturer(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "DIWA2110", reports[0].CourseCode)
	require.Equal(t, "Jane Tau", reports[0].LecturerName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositorySearchScoped(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := sqlmock.NewRows(reportDetailColumns)
	reportDetailRow(rows, 21, 3)
	lecturerID := int64(3)
	mock.ExpectQuery(regexp.QuoteMeta("AND r.lecturer_id = $2")).
		WithArgs("%rest%", lecturerID).
		WillReturnRows(rows)

	reports, err := repo.Search(context.Background(), "REST", &lecturerID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryFindByDateRange(t *testing.T) {
	db, mock, cleanup := newReportRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := sqlmock.NewRows(reportDetailColumns)
	reportDetailRow(rows, 21, 3)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.date_of_lecture BETWEEN $1 AND $2")).
		WithArgs(start, end).
		WillReturnRows(rows)

	reports, err := repo.FindByDateRange(context.Background(), start, end, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
