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

// ClassRepository provides database access for class sections.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository creates a new instance of ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

const classDetailSelect = `SELECT c.id, c.class_name, c.course_id, c.lecturer_id,
		c.total_registered_students, c.venue, c.scheduled_time, c.created_at,
		co.course_code, co.course_name, u.name AS lecturer_name
	FROM classes c
	JOIN courses co ON c.course_id = co.id
	JOIN users u ON c.lecturer_id = u.id`

// Create inserts a class section and fills in the generated identifier.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO classes (class_name, course_id, lecturer_id, total_registered_students, venue, scheduled_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.GetContext(ctx, &class.ID, query,
		class.ClassName, class.CourseID, class.LecturerID, class.TotalRegisteredStudents,
		class.Venue, class.ScheduledTime, class.CreatedAt); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// FindByID returns a class with its course and lecturer names.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.ClassDetail, error) {
	const query = classDetailSelect + ` WHERE c.id = $1 LIMIT 1`
	var class models.ClassDetail
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find class by id: %w", err)
	}
	return &class, nil
}

// FindAll returns every class ordered by class name.
func (r *ClassRepository) FindAll(ctx context.Context) ([]models.ClassDetail, error) {
	const query = classDetailSelect + ` ORDER BY c.class_name, c.id`
	var classes []models.ClassDetail
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByLecturer returns the classes taught by one lecturer.
func (r *ClassRepository) FindByLecturer(ctx context.Context, lecturerID int64) ([]models.ClassDetail, error) {
	const query = classDetailSelect + ` WHERE c.lecturer_id = $1 ORDER BY c.class_name, c.id`
	var classes []models.ClassDetail
	if err := r.db.SelectContext(ctx, &classes, query, lecturerID); err != nil {
		return nil, fmt.Errorf("list classes by lecturer: %w", err)
	}
	return classes, nil
}

// Search matches a case-insensitive substring against class name, course name
// and course code, optionally scoped to one lecturer.
func (r *ClassRepository) Search(ctx context.Context, q string, lecturerID *int64) ([]models.ClassDetail, error) {
	query := classDetailSelect + `
	WHERE (LOWER(c.class_name) LIKE $1 OR LOWER(co.course_name) LIKE $1 OR LOWER(co.course_code) LIKE $1)`
	args := []interface{}{"%" + strings.ToLower(q) + "%"}
	if lecturerID != nil {
		query += ` AND c.lecturer_id = $2`
		args = append(args, *lecturerID)
	}
	query += ` ORDER BY c.class_name, c.id`

	var classes []models.ClassDetail
	if err := r.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, fmt.Errorf("search classes: %w", err)
	}
	return classes, nil
}
