package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luct-ict/reporting-api/internal/models"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

type mockCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error {
	for _, c := range m.courses {
		if c.CourseCode == course.CourseCode {
			return &pq.Error{Code: "23505"}
		}
	}
	if m.courses == nil {
		m.courses = make(map[int64]*models.Course)
	}
	m.nextID++
	course.ID = m.nextID
	copy := *course
	m.courses[course.ID] = &copy
	return nil
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if course, ok := m.courses[id]; ok {
		copy := *course
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockCourseRepo) FindAll(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	for _, c := range m.courses {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCourseRepo) Update(ctx context.Context, id int64, courseCode, courseName, faculty string) (bool, error) {
	course, ok := m.courses[id]
	if !ok {
		return false, nil
	}
	course.CourseCode = courseCode
	course.CourseName = courseName
	course.Faculty = faculty
	return true, nil
}

type mockClassCreator struct {
	classes []models.Class
	nextID  int64
}

func (m *mockClassCreator) Create(ctx context.Context, class *models.Class) error {
	m.nextID++
	class.ID = m.nextID
	m.classes = append(m.classes, *class)
	return nil
}

func programLeaderClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: 9, Role: models.RoleProgramLeader}
}

func TestCourseServiceCreate(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, &mockClassCreator{}, &mockUserRepo{}, nil, nil)

	courseID, err := svc.Create(context.Background(), programLeaderClaims(), CreateCourseRequest{
		CourseCode: "DIWA2110",
		CourseName: "Web Application Development",
		Faculty:    "ICT",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), courseID)
	assert.Equal(t, int64(9), repo.courses[courseID].ProgramLeaderID)
}

func TestCourseServiceCreateDuplicateCode(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, &mockClassCreator{}, &mockUserRepo{}, nil, nil)

	req := CreateCourseRequest{CourseCode: "DIWA2110", CourseName: "Web Application Development", Faculty: "ICT"}
	_, err := svc.Create(context.Background(), programLeaderClaims(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), programLeaderClaims(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Course code already exists", appErr.Message)
}

func TestCourseServiceCreateForbidden(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, &mockClassCreator{}, &mockUserRepo{}, nil, nil)

	for _, role := range []models.Role{models.RoleStudent, models.RoleLecturer, models.RolePrincipalLecturer} {
		_, err := svc.Create(context.Background(), &models.JWTClaims{UserID: 1, Role: role}, CreateCourseRequest{
			CourseCode: "DIWA2110",
			CourseName: "Web Application Development",
			Faculty:    "ICT",
		})
		require.Error(t, err, string(role))
		assert.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)
	}
}

func TestCourseServiceUpdateMissing(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, &mockClassCreator{}, &mockUserRepo{}, nil, nil)

	err := svc.Update(context.Background(), programLeaderClaims(), 99, UpdateCourseRequest{
		CourseCode: "DIWA2110",
		CourseName: "Web Apps",
		Faculty:    "ICT",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Course not found", appErr.Message)
}

func TestCourseServiceAssignLecturer(t *testing.T) {
	users := &mockUserRepo{users: map[int64]*models.User{
		3: {ID: 3, Name: "Jane Tau", Role: models.RoleLecturer},
	}}
	courses := &mockCourseRepo{}
	classes := &mockClassCreator{}
	svc := NewCourseService(courses, classes, users, nil, nil)

	courseID, err := svc.Create(context.Background(), programLeaderClaims(), CreateCourseRequest{
		CourseCode: "DIWA2110",
		CourseName: "Web Application Development",
		Faculty:    "ICT",
	})
	require.NoError(t, err)

	classID, err := svc.AssignLecturer(context.Background(), programLeaderClaims(), courseID, AssignLecturerRequest{
		LecturerID: 3,
		ClassName:  "BSCITY2S1",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), classID)

	created := classes.classes[0]
	assert.Equal(t, courseID, created.CourseID)
	assert.Equal(t, int64(3), created.LecturerID)
	// Omitted venue and time fall back to the platform defaults.
	assert.Equal(t, "TBA", created.Venue)
	assert.Equal(t, "08:00:00", created.ScheduledTime)
}

func TestCourseServiceAssignLecturerInvalidTarget(t *testing.T) {
	users := &mockUserRepo{users: map[int64]*models.User{
		8: {ID: 8, Name: "Dr. Molefi", Role: models.RolePrincipalLecturer},
	}}
	courses := &mockCourseRepo{}
	classes := &mockClassCreator{}
	svc := NewCourseService(courses, classes, users, nil, nil)

	courseID, err := svc.Create(context.Background(), programLeaderClaims(), CreateCourseRequest{
		CourseCode: "DIWA2110",
		CourseName: "Web Application Development",
		Faculty:    "ICT",
	})
	require.NoError(t, err)

	// Unknown user.
	_, err = svc.AssignLecturer(context.Background(), programLeaderClaims(), courseID, AssignLecturerRequest{
		LecturerID: 99,
		ClassName:  "BSCITY2S1",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid lecturer selected", appErrors.FromError(err).Message)

	// Exists but holds the wrong role.
	_, err = svc.AssignLecturer(context.Background(), programLeaderClaims(), courseID, AssignLecturerRequest{
		LecturerID: 8,
		ClassName:  "BSCITY2S1",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid lecturer selected", appErrors.FromError(err).Message)
	assert.Empty(t, classes.classes)
}

func TestCourseServiceAssignLecturerMissingCourse(t *testing.T) {
	users := &mockUserRepo{users: map[int64]*models.User{
		3: {ID: 3, Name: "Jane Tau", Role: models.RoleLecturer},
	}}
	svc := NewCourseService(&mockCourseRepo{}, &mockClassCreator{}, users, nil, nil)

	_, err := svc.AssignLecturer(context.Background(), programLeaderClaims(), 42, AssignLecturerRequest{
		LecturerID: 3,
		ClassName:  "BSCITY2S1",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Course not found", appErr.Message)
}
