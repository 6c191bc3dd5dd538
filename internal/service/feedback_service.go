package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/luct-ict/reporting-api/internal/models"
	"github.com/luct-ict/reporting-api/internal/policy"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

type feedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByReport(ctx context.Context, reportID int64) ([]models.FeedbackDetail, error)
	Update(ctx context.Context, id int64, text string, rating *int) (bool, error)
}

type feedbackReportFinder interface {
	FindByID(ctx context.Context, id int64) (*models.ReportDetail, error)
}

// CreateFeedbackRequest attaches principal-lecturer commentary to a report.
type CreateFeedbackRequest struct {
	ReportID     int64  `json:"report_id" validate:"required"`
	FeedbackText string `json:"feedback_text" validate:"required"`
	Rating       *int   `json:"rating"`
}

// UpdateFeedbackRequest rewrites an existing feedback row.
type UpdateFeedbackRequest struct {
	FeedbackText string `json:"feedback_text" validate:"required"`
	Rating       *int   `json:"rating"`
}

// FeedbackService implements the feedback workflow. The feedback log is
// append-only: a reviewer may file multiple rows against the same report.
type FeedbackService struct {
	feedback  feedbackRepository
	reports   feedbackReportFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeedbackService constructs a FeedbackService instance.
func NewFeedbackService(feedback feedbackRepository, reports feedbackReportFinder, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &FeedbackService{feedback: feedback, reports: reports, validator: validate, logger: logger}
}

// Create attaches feedback to an existing report. The report is checked
// first so nothing is written when it does not exist.
func (s *FeedbackService) Create(ctx context.Context, claims *models.JWTClaims, req CreateFeedbackRequest) (int64, error) {
	if !policy.CanMutate(claims.Role, policy.ActionFeedbackCreate) {
		return 0, appErrors.Clone(appErrors.ErrForbidden, "only principal lecturers can add feedback")
	}
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Report ID and feedback text are required")
	}
	if err := validateRating(req.Rating); err != nil {
		return 0, err
	}

	if _, err := s.reports.FindByID(ctx, req.ReportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "Report not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report")
	}

	feedback := &models.Feedback{
		ReportID:            req.ReportID,
		PrincipalLecturerID: claims.UserID,
		FeedbackText:        req.FeedbackText,
		Rating:              req.Rating,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create feedback")
	}

	s.logger.Info("feedback created", zap.Int64("feedback_id", feedback.ID), zap.Int64("report_id", req.ReportID))
	return feedback.ID, nil
}

// ListByReport returns all feedback rows attached to a report.
func (s *FeedbackService) ListByReport(ctx context.Context, reportID int64) ([]models.FeedbackDetail, error) {
	feedback, err := s.feedback.FindByReport(ctx, reportID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list feedback")
	}
	if feedback == nil {
		feedback = []models.FeedbackDetail{}
	}
	return feedback, nil
}

// Update rewrites an existing feedback row.
func (s *FeedbackService) Update(ctx context.Context, claims *models.JWTClaims, id int64, req UpdateFeedbackRequest) error {
	if !policy.CanMutate(claims.Role, policy.ActionFeedbackUpdate) {
		return appErrors.Clone(appErrors.ErrForbidden, "only principal lecturers can update feedback")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "feedback text is required")
	}
	if err := validateRating(req.Rating); err != nil {
		return err
	}

	ok, err := s.feedback.Update(ctx, id, req.FeedbackText, req.Rating)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update feedback")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "Feedback not found")
	}
	return nil
}

// The data model accepts a nullable rating; when one is supplied it must sit
// in the 1-5 band.
func validateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return appErrors.Clone(appErrors.ErrValidation, "rating must be between 1 and 5")
	}
	return nil
}
