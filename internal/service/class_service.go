package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/luct-ict/reporting-api/internal/models"
	"github.com/luct-ict/reporting-api/internal/policy"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

type classRepository interface {
	FindByID(ctx context.Context, id int64) (*models.ClassDetail, error)
	FindAll(ctx context.Context) ([]models.ClassDetail, error)
	FindByLecturer(ctx context.Context, lecturerID int64) ([]models.ClassDetail, error)
}

// ClassService exposes the read-only class listing.
type ClassService struct {
	classes classRepository
	logger  *zap.Logger
}

// NewClassService constructs a ClassService instance.
func NewClassService(classes classRepository, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{classes: classes, logger: logger}
}

// List returns the classes visible to the caller: lecturers see their own
// sections, every other role sees all of them.
func (s *ClassService) List(ctx context.Context, claims *models.JWTClaims) ([]models.ClassDetail, error) {
	var (
		classes []models.ClassDetail
		err     error
	)
	if policy.ClassScope(claims.Role) == policy.ScopeOwn {
		classes, err = s.classes.FindByLecturer(ctx, claims.UserID)
	} else {
		classes, err = s.classes.FindAll(ctx)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	if classes == nil {
		classes = []models.ClassDetail{}
	}
	return classes, nil
}

// Get returns one class with joined names.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.ClassDetail, error) {
	class, err := s.classes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return class, nil
}
