package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/luct-ict/reporting-api/internal/models"
	"github.com/luct-ict/reporting-api/internal/policy"
	"github.com/luct-ict/reporting-api/internal/repository"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

const (
	defaultClassVenue = "TBA"
	defaultClassTime  = "08:00:00"
)

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, id int64, courseCode, courseName, faculty string) (bool, error)
}

type classCreator interface {
	Create(ctx context.Context, class *models.Class) error
}

type courseUserDirectory interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// CreateCourseRequest carries the fields for a new course.
type CreateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
	Faculty    string `json:"faculty" validate:"required"`
}

// UpdateCourseRequest rewrites an existing course.
type UpdateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
	Faculty    string `json:"faculty" validate:"required"`
}

// AssignLecturerRequest creates a class section binding a lecturer to a course.
type AssignLecturerRequest struct {
	LecturerID    int64  `json:"lecturer_id" validate:"required"`
	ClassName     string `json:"class_name" validate:"required"`
	Venue         string `json:"venue"`
	ScheduledTime string `json:"scheduled_time"`
	TotalStudents int    `json:"total_students"`
}

// CourseService implements course management for program leaders plus the
// read-only catalogue every role can browse.
type CourseService struct {
	courses   courseRepository
	classes   classCreator
	users     courseUserDirectory
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(courses courseRepository, classes classCreator, users courseUserDirectory, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{courses: courses, classes: classes, users: users, validator: validate, logger: logger}
}

// List returns the full course catalogue.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Get returns one course.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	return course, nil
}

// Create stores a new course owned by the calling program leader.
func (s *CourseService) Create(ctx context.Context, claims *models.JWTClaims, req CreateCourseRequest) (int64, error) {
	if !policy.CanMutate(claims.Role, policy.ActionCourseCreate) {
		return 0, appErrors.Clone(appErrors.ErrForbidden, "only program leaders can create courses")
	}
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Course code, name, and faculty are required")
	}

	course := &models.Course{
		CourseCode:      req.CourseCode,
		CourseName:      req.CourseName,
		Faculty:         req.Faculty,
		ProgramLeaderID: claims.UserID,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		if repository.IsUniqueViolation(err) {
			return 0, appErrors.Clone(appErrors.ErrConflict, "Course code already exists")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}

	s.logger.Info("course created", zap.Int64("course_id", course.ID), zap.String("code", course.CourseCode))
	return course.ID, nil
}

// Update rewrites an existing course.
func (s *CourseService) Update(ctx context.Context, claims *models.JWTClaims, id int64, req UpdateCourseRequest) error {
	if !policy.CanMutate(claims.Role, policy.ActionCourseUpdate) {
		return appErrors.Clone(appErrors.ErrForbidden, "only program leaders can update courses")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Course code, name, and faculty are required")
	}

	ok, err := s.courses.Update(ctx, id, req.CourseCode, req.CourseName, req.Faculty)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return appErrors.Clone(appErrors.ErrConflict, "Course code already exists")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "Course not found")
	}
	return nil
}

// AssignLecturer creates a class section for the course taught by the given
// lecturer. The lecturer must exist and actually hold the lecturer role.
func (s *CourseService) AssignLecturer(ctx context.Context, claims *models.JWTClaims, courseID int64, req AssignLecturerRequest) (int64, error) {
	if !policy.CanMutate(claims.Role, policy.ActionCourseAssign) {
		return 0, appErrors.Clone(appErrors.ErrForbidden, "only program leaders can assign lecturers")
	}
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Lecturer and class name are required")
	}

	lecturer, err := s.users.FindByID(ctx, req.LecturerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrValidation, "Invalid lecturer selected")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lecturer")
	}
	if lecturer.Role != models.RoleLecturer {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Invalid lecturer selected")
	}

	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}

	venue := req.Venue
	if venue == "" {
		venue = defaultClassVenue
	}
	scheduledTime := req.ScheduledTime
	if scheduledTime == "" {
		scheduledTime = defaultClassTime
	}

	class := &models.Class{
		ClassName:               req.ClassName,
		CourseID:                courseID,
		LecturerID:              req.LecturerID,
		TotalRegisteredStudents: req.TotalStudents,
		Venue:                   venue,
		ScheduledTime:           scheduledTime,
	}
	if err := s.classes.Create(ctx, class); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}

	s.logger.Info("lecturer assigned",
		zap.Int64("course_id", courseID),
		zap.Int64("lecturer_id", req.LecturerID),
		zap.Int64("class_id", class.ID))
	return class.ID, nil
}
