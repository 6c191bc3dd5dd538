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

func newUserRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("jane@luct.ac.ls", "hash", "Jane Tau", "lecturer", "ICT", "General", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	user := &models.User{
		Email:        "jane@luct.ac.ls",
		PasswordHash: "hash",
		Name:         "Jane Tau",
		Role:         models.RoleLecturer,
		Faculty:      "ICT",
		Department:   "General",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.Equal(t, int64(7), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "faculty", "department", "created_at"}).
		AddRow(int64(3), "jane@luct.ac.ls", "hash", "Jane Tau", "lecturer", "ICT", "General", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, faculty, department, created_at FROM users WHERE email = $1")).
		WithArgs("jane@luct.ac.ls").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "jane@luct.ac.ls")
	require.NoError(t, err)
	require.Equal(t, int64(3), user.ID)
	require.Equal(t, models.RoleLecturer, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailMissing(t *testing.T) {
	db, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, faculty, department, created_at FROM users WHERE email = $1")).
		WithArgs("nobody@luct.ac.ls").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "nobody@luct.ac.ls")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepositoryFindLecturers(t *testing.T) {
	db, mock, cleanup := newUserRepoMock(t)
	defer cleanup()

	repo := NewUserRepository(db)
	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(int64(1), "Alice Mokoena", "alice@luct.ac.ls").
		AddRow(int64(2), "Ben Khumalo", "ben@luct.ac.ls")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM users WHERE role = 'lecturer' ORDER BY name, id")).
		WillReturnRows(rows)

	lecturers, err := repo.FindLecturers(context.Background())
	require.NoError(t, err)
	require.Len(t, lecturers, 2)
	require.Equal(t, "Alice Mokoena", lecturers[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
