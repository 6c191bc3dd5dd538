package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/luct-ict/reporting-api/internal/models"
)

// FeedbackRepository provides database access for report feedback.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a feedback row and fills in the generated identifier.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO feedback (report_id, principal_lecturer_id, feedback_text, rating, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &feedback.ID, query,
		feedback.ReportID, feedback.PrincipalLecturerID, feedback.FeedbackText,
		feedback.Rating, feedback.CreatedAt); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

// FindByReport returns every feedback row for a report, newest first.
func (r *FeedbackRepository) FindByReport(ctx context.Context, reportID int64) ([]models.FeedbackDetail, error) {
	const query = `SELECT f.id, f.report_id, f.principal_lecturer_id, f.feedback_text, f.rating, f.created_at,
			u.name AS principal_lecturer_name
		FROM feedback f
		JOIN users u ON f.principal_lecturer_id = u.id
		WHERE f.report_id = $1
		ORDER BY f.created_at DESC, f.id DESC`
	var feedback []models.FeedbackDetail
	if err := r.db.SelectContext(ctx, &feedback, query, reportID); err != nil {
		return nil, fmt.Errorf("list feedback by report: %w", err)
	}
	return feedback, nil
}

// Update rewrites the feedback text and rating. Returns false when no row matched.
func (r *FeedbackRepository) Update(ctx context.Context, id int64, text string, rating *int) (bool, error) {
	const query = `UPDATE feedback SET feedback_text = $2, rating = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, text, rating)
	if err != nil {
		return false, fmt.Errorf("update feedback: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update feedback rows affected: %w", err)
	}
	return affected > 0, nil
}
