package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/luct-ict/reporting-api/internal/models"
	"github.com/luct-ict/reporting-api/internal/policy"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

const lectureDateLayout = "2006-01-02"

type reportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id int64) (*models.ReportDetail, error)
	FindAll(ctx context.Context) ([]models.ReportDetail, error)
	FindByLecturer(ctx context.Context, lecturerID int64) ([]models.ReportDetail, error)
	FindByFaculty(ctx context.Context, faculty string) ([]models.ReportDetail, error)
}

type reportUserDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// SubmitReportRequest carries the lecturer's weekly report fields. Any
// lecturer_id in the payload is ignored; authorship always comes from the
// authenticated caller.
type SubmitReportRequest struct {
	FacultyName           string `json:"faculty_name" validate:"required"`
	ClassID               int64  `json:"class_id" validate:"required"`
	WeekOfReporting       string `json:"week_of_reporting" validate:"required"`
	DateOfLecture         string `json:"date_of_lecture" validate:"required"`
	CourseID              int64  `json:"course_id" validate:"required"`
	ActualStudentsPresent int    `json:"actual_students_present" validate:"required"`
	Venue                 string `json:"venue" validate:"required"`
	ScheduledLectureTime  string `json:"scheduled_lecture_time" validate:"required"`
	TopicTaught           string `json:"topic_taught" validate:"required"`
	LearningOutcomes      string `json:"learning_outcomes" validate:"required"`
	Recommendations       string `json:"recommendations"`
	LecturerID            int64  `json:"lecturer_id"`
}

// ReportService implements the report submission and listing workflow.
type ReportService struct {
	reports   reportRepository
	users     reportUserDirectory
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReportService constructs a ReportService instance.
func NewReportService(reports reportRepository, users reportUserDirectory, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ReportService{reports: reports, users: users, validator: validate, logger: logger}
}

// Submit stores a new lecture report authored by the caller.
func (s *ReportService) Submit(ctx context.Context, claims *models.JWTClaims, req SubmitReportRequest) (int64, error) {
	if !policy.CanMutate(claims.Role, policy.ActionReportCreate) {
		return 0, appErrors.Clone(appErrors.ErrForbidden, "only lecturers can submit reports")
	}
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "All required fields must be filled")
	}

	lectureDate, err := time.Parse(lectureDateLayout, req.DateOfLecture)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "date_of_lecture must be formatted YYYY-MM-DD")
	}

	report := &models.Report{
		FacultyName:           req.FacultyName,
		ClassID:               req.ClassID,
		CourseID:              req.CourseID,
		LecturerID:            claims.UserID,
		WeekOfReporting:       req.WeekOfReporting,
		DateOfLecture:         lectureDate,
		ActualStudentsPresent: req.ActualStudentsPresent,
		Venue:                 req.Venue,
		ScheduledLectureTime:  req.ScheduledLectureTime,
		TopicTaught:           req.TopicTaught,
		LearningOutcomes:      req.LearningOutcomes,
		Recommendations:       req.Recommendations,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to create report")
	}

	s.logger.Info("report submitted", zap.Int64("report_id", report.ID), zap.Int64("lecturer_id", claims.UserID))
	return report.ID, nil
}

// List returns the reports visible to the caller. Lecturers see their own,
// principal lecturers see their faculty, everyone else sees all.
func (s *ReportService) List(ctx context.Context, claims *models.JWTClaims) ([]models.ReportDetail, error) {
	var (
		reports []models.ReportDetail
		err     error
	)

	switch policy.ReportScope(claims.Role) {
	case policy.ScopeOwn:
		reports, err = s.reports.FindByLecturer(ctx, claims.UserID)
	case policy.ScopeFaculty:
		var user *models.User
		user, err = s.users.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrUnauthorized, "account no longer exists")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve faculty")
		}
		reports, err = s.reports.FindByFaculty(ctx, user.Faculty)
	default:
		reports, err = s.reports.FindAll(ctx)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reports")
	}
	if reports == nil {
		reports = []models.ReportDetail{}
	}
	return reports, nil
}

// Get returns one report with joined names.
func (s *ReportService) Get(ctx context.Context, id int64) (*models.ReportDetail, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load report")
	}
	return report, nil
}
