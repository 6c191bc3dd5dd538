package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luct-ict/reporting-api/internal/models"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

type userDirectoryRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindLecturers(ctx context.Context) ([]models.Lecturer, error)
}

// UserService exposes the read-only user directory consumed by the
// course-assignment screens.
type UserService struct {
	users  userDirectoryRepository
	logger *zap.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(users userDirectoryRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, logger: logger}
}

// List returns every user ordered by name.
func (s *UserService) List(ctx context.Context) ([]models.UserInfo, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	infos := make([]models.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, models.UserInfo{
			ID:         u.ID,
			Email:      u.Email,
			Name:       u.Name,
			Role:       u.Role,
			Faculty:    u.Faculty,
			Department: u.Department,
		})
	}
	return infos, nil
}

// Lecturers returns the slim lecturer directory.
func (s *UserService) Lecturers(ctx context.Context) ([]models.Lecturer, error) {
	lecturers, err := s.users.FindLecturers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lecturers")
	}
	if lecturers == nil {
		lecturers = []models.Lecturer{}
	}
	return lecturers, nil
}
