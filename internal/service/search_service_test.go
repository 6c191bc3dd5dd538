package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luct-ict/reporting-api/internal/models"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

type mockSearchReports struct {
	reports   []models.ReportDetail
	lastOwner *int64
}

func (m *mockSearchReports) Search(ctx context.Context, q string, lecturerID *int64) ([]models.ReportDetail, error) {
	m.lastOwner = lecturerID
	var out []models.ReportDetail
	for _, r := range m.reports {
		if lecturerID != nil && r.LecturerID != *lecturerID {
			continue
		}
		if strings.Contains(strings.ToLower(r.TopicTaught), strings.ToLower(q)) {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockSearchClasses struct {
	classes []models.ClassDetail
}

func (m *mockSearchClasses) Search(ctx context.Context, q string, lecturerID *int64) ([]models.ClassDetail, error) {
	return m.classes, nil
}

type mockSearchCourses struct {
	courses []models.Course
}

func (m *mockSearchCourses) Search(ctx context.Context, q string) ([]models.Course, error) {
	return m.courses, nil
}

func TestSearchServiceInvalidType(t *testing.T) {
	svc := NewSearchService(&mockSearchReports{}, &mockSearchClasses{}, &mockSearchCourses{}, nil)

	_, err := svc.Search(context.Background(), &models.JWTClaims{UserID: 1, Role: models.RoleStudent}, "web", "lectures")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Invalid search type", appErr.Message)
}

func TestSearchServiceLecturerScoped(t *testing.T) {
	reports := &mockSearchReports{reports: []models.ReportDetail{
		{Report: models.Report{ID: 1, LecturerID: 3, TopicTaught: "REST APIs"}},
		{Report: models.Report{ID: 2, LecturerID: 4, TopicTaught: "REST APIs"}},
	}}
	svc := NewSearchService(reports, &mockSearchClasses{}, &mockSearchCourses{}, nil)

	results, err := svc.Search(context.Background(), &models.JWTClaims{UserID: 3, Role: models.RoleLecturer}, "rest", "reports")
	require.NoError(t, err)
	require.NotNil(t, reports.lastOwner)
	assert.Equal(t, int64(3), *reports.lastOwner)

	matched, ok := results.([]models.ReportDetail)
	require.True(t, ok)
	require.Len(t, matched, 1)
	assert.Equal(t, int64(1), matched[0].ID)
}

func TestSearchServiceOtherRolesUnscoped(t *testing.T) {
	reports := &mockSearchReports{}
	svc := NewSearchService(reports, &mockSearchClasses{}, &mockSearchCourses{}, nil)

	for _, role := range []models.Role{models.RoleStudent, models.RolePrincipalLecturer, models.RoleProgramLeader} {
		_, err := svc.Search(context.Background(), &models.JWTClaims{UserID: 1, Role: role}, "web", "reports")
		require.NoError(t, err, string(role))
		assert.Nil(t, reports.lastOwner, string(role))
	}
}

func TestSearchServiceEmptyResultsAreSlices(t *testing.T) {
	svc := NewSearchService(&mockSearchReports{}, &mockSearchClasses{}, &mockSearchCourses{}, nil)
	claims := &models.JWTClaims{UserID: 1, Role: models.RoleStudent}

	for _, entity := range []string{"reports", "courses", "classes"} {
		results, err := svc.Search(context.Background(), claims, "nothing", entity)
		require.NoError(t, err, entity)
		require.NotNil(t, results, entity)
	}

	results, err := svc.Search(context.Background(), claims, "nothing", "courses")
	require.NoError(t, err)
	courses, ok := results.([]models.Course)
	require.True(t, ok)
	require.Empty(t, courses)
}
