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

// ReportRepository provides database access for lecture reports.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportDetailSelect = `SELECT r.id, r.faculty_name, r.class_id, r.course_id, r.lecturer_id,
		r.week_of_reporting, r.date_of_lecture, r.actual_students_present, r.venue,
		r.scheduled_lecture_time, r.topic_taught, r.learning_outcomes, r.recommendations, r.created_at,
		co.course_code, co.course_name, cl.class_name, u.name AS lecturer_name
	FROM reports r
	JOIN courses co ON r.course_id = co.id
	JOIN classes cl ON r.class_id = cl.id
	JOIN users u ON r.lecturer_id = u.id`

// Insertion order doubles as the tie-breaker on every listing so repeated
// queries return rows in a reproducible order.
const reportOrder = ` ORDER BY r.created_at DESC, r.id DESC`

// Create inserts a report and fills in the generated identifier.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO reports (faculty_name, class_id, course_id, lecturer_id,
			week_of_reporting, date_of_lecture, actual_students_present, venue,
			scheduled_lecture_time, topic_taught, learning_outcomes, recommendations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	if err := r.db.GetContext(ctx, &report.ID, query,
		report.FacultyName, report.ClassID, report.CourseID, report.LecturerID,
		report.WeekOfReporting, report.DateOfLecture, report.ActualStudentsPresent, report.Venue,
		report.ScheduledLectureTime, report.TopicTaught, report.LearningOutcomes,
		report.Recommendations, report.CreatedAt); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// FindByID returns a report with its joined course, class and lecturer names.
func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*models.ReportDetail, error) {
	const query = reportDetailSelect + ` WHERE r.id = $1 LIMIT 1`
	var report models.ReportDetail
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find report by id: %w", err)
	}
	return &report, nil
}

// FindAll returns every report, newest first.
func (r *ReportRepository) FindAll(ctx context.Context) ([]models.ReportDetail, error) {
	const query = reportDetailSelect + reportOrder
	var reports []models.ReportDetail
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// FindByLecturer returns the reports authored by one lecturer.
func (r *ReportRepository) FindByLecturer(ctx context.Context, lecturerID int64) ([]models.ReportDetail, error) {
	const query = reportDetailSelect + ` WHERE r.lecturer_id = $1` + reportOrder
	var reports []models.ReportDetail
	if err := r.db.SelectContext(ctx, &reports, query, lecturerID); err != nil {
		return nil, fmt.Errorf("list reports by lecturer: %w", err)
	}
	return reports, nil
}

// FindByFaculty returns the reports filed under one faculty.
func (r *ReportRepository) FindByFaculty(ctx context.Context, faculty string) ([]models.ReportDetail, error) {
	const query = reportDetailSelect + ` WHERE r.faculty_name = $1` + reportOrder
	var reports []models.ReportDetail
	if err := r.db.SelectContext(ctx, &reports, query, faculty); err != nil {
		return nil, fmt.Errorf("list reports by faculty: %w", err)
	}
	return reports, nil
}

// Search matches a case-insensitive substring against course name, topic and
// lecturer name, optionally scoped to one lecturer.
func (r *ReportRepository) Search(ctx context.Context, q string, lecturerID *int64) ([]models.ReportDetail, error) {
	query := reportDetailSelect + `
	WHERE (LOWER(co.course_name) LIKE $1 OR LOWER(r.topic_taught) LIKE $1 OR LOWER(u.name) LIKE $1)`
	args := []interface{}{"%" + strings.ToLower(q) + "%"}
	if lecturerID != nil {
		query += ` AND r.lecturer_id = $2`
		args = append(args, *lecturerID)
	}
	query += reportOrder

	var reports []models.ReportDetail
	if err := r.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, fmt.Errorf("search reports: %w", err)
	}
	return reports, nil
}

// FindByDateRange returns reports whose lecture date falls within the
// inclusive bounds, newest lecture first, optionally scoped to one lecturer.
func (r *ReportRepository) FindByDateRange(ctx context.Context, start, end time.Time, lecturerID *int64) ([]models.ReportDetail, error) {
	query := reportDetailSelect + ` WHERE r.date_of_lecture BETWEEN $1 AND $2`
	args := []interface{}{start, end}
	if lecturerID != nil {
		query += ` AND r.lecturer_id = $3`
		args = append(args, *lecturerID)
	}
	query += ` ORDER BY r.date_of_lecture DESC, r.id DESC`

	var reports []models.ReportDetail
	if err := r.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, fmt.Errorf("list reports by date range: %w", err)
	}
	return reports, nil
}
