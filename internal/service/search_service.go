package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luct-ict/reporting-api/internal/models"
	"github.com/luct-ict/reporting-api/internal/policy"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

type searchReportRepository interface {
	Search(ctx context.Context, q string, lecturerID *int64) ([]models.ReportDetail, error)
}

type searchClassRepository interface {
	Search(ctx context.Context, q string, lecturerID *int64) ([]models.ClassDetail, error)
}

type searchCourseRepository interface {
	Search(ctx context.Context, q string) ([]models.Course, error)
}

// SearchService dispatches substring search across reports, courses and
// classes, scoping lecturer results to their own rows.
type SearchService struct {
	reports searchReportRepository
	classes searchClassRepository
	courses searchCourseRepository
	logger  *zap.Logger
}

// NewSearchService constructs a SearchService instance.
func NewSearchService(reports searchReportRepository, classes searchClassRepository, courses searchCourseRepository, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{reports: reports, classes: classes, courses: courses, logger: logger}
}

// Search runs the query against the requested entity type.
func (s *SearchService) Search(ctx context.Context, claims *models.JWTClaims, q, entityType string) (interface{}, error) {
	var owner *int64
	if policy.SearchOwnerScoped(claims.Role) {
		owner = &claims.UserID
	}

	switch entityType {
	case "reports":
		results, err := s.reports.Search(ctx, q, owner)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "report search failed")
		}
		if results == nil {
			results = []models.ReportDetail{}
		}
		return results, nil
	case "courses":
		results, err := s.courses.Search(ctx, q)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "course search failed")
		}
		if results == nil {
			results = []models.Course{}
		}
		return results, nil
	case "classes":
		results, err := s.classes.Search(ctx, q, owner)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "class search failed")
		}
		if results == nil {
			results = []models.ClassDetail{}
		}
		return results, nil
	}
	return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid search type")
}
