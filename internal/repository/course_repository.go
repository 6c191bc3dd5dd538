package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/luct-ict/reporting-api/internal/models"
)

// CourseRepository provides database access for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, course_code, course_name, faculty, program_leader_id, created_at`

// Create inserts a course and fills in the generated identifier.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (course_code, course_name, faculty, program_leader_id, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &course.ID, query,
		course.CourseCode, course.CourseName, course.Faculty, course.ProgramLeaderID, course.CreatedAt); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// FindByID returns a course by identifier.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 LIMIT 1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find course by id: %w", err)
	}
	return &course, nil
}

// FindAll returns all courses ordered by course code.
func (r *CourseRepository) FindAll(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses ORDER BY course_code, id`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByOwner returns the courses created by one program leader.
func (r *CourseRepository) FindByOwner(ctx context.Context, programLeaderID int64) ([]models.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses WHERE program_leader_id = $1 ORDER BY course_code, id`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, programLeaderID); err != nil {
		return nil, fmt.Errorf("list courses by owner: %w", err)
	}
	return courses, nil
}

// Search matches a case-insensitive substring against course name and code.
func (r *CourseRepository) Search(ctx context.Context, q string) ([]models.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses
		WHERE LOWER(course_name) LIKE $1 OR LOWER(course_code) LIKE $1
		ORDER BY course_code, id`
	pattern := "%" + strings.ToLower(q) + "%"
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, pattern); err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return courses, nil
}

// Update rewrites the mutable course fields. Returns false when no row matched.
func (r *CourseRepository) Update(ctx context.Context, id int64, courseCode, courseName, faculty string) (bool, error) {
	const query = `UPDATE courses SET course_code = $2, course_name = $3, faculty = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, courseCode, courseName, faculty)
	if err != nil {
		return false, fmt.Errorf("update course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update course rows affected: %w", err)
	}
	return affected > 0, nil
}
