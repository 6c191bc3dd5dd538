package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luct-ict/reporting-api/internal/models"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

type mockFeedbackRepo struct {
	feedback []models.FeedbackDetail
	nextID   int64
}

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	m.nextID++
	feedback.ID = m.nextID
	m.feedback = append(m.feedback, models.FeedbackDetail{Feedback: *feedback})
	return nil
}

func (m *mockFeedbackRepo) FindByReport(ctx context.Context, reportID int64) ([]models.FeedbackDetail, error) {
	var out []models.FeedbackDetail
	for _, f := range m.feedback {
		if f.ReportID == reportID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *mockFeedbackRepo) Update(ctx context.Context, id int64, text string, rating *int) (bool, error) {
	for i := range m.feedback {
		if m.feedback[i].ID == id {
			m.feedback[i].FeedbackText = text
			m.feedback[i].Rating = rating
			return true, nil
		}
	}
	return false, nil
}

type mockReportFinder struct {
	ids map[int64]bool
}

func (m *mockReportFinder) FindByID(ctx context.Context, id int64) (*models.ReportDetail, error) {
	if m.ids[id] {
		return &models.ReportDetail{Report: models.Report{ID: id}}, nil
	}
	return nil, sql.ErrNoRows
}

func principalClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: 8, Role: models.RolePrincipalLecturer}
}

func TestFeedbackServiceCreate(t *testing.T) {
	repo := &mockFeedbackRepo{}
	svc := NewFeedbackService(repo, &mockReportFinder{ids: map[int64]bool{21: true}}, nil, nil)

	rating := 4
	feedbackID, err := svc.Create(context.Background(), principalClaims(), CreateFeedbackRequest{
		ReportID:     21,
		FeedbackText: "Good coverage of the outline",
		Rating:       &rating,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), feedbackID)
	assert.Equal(t, int64(8), repo.feedback[0].PrincipalLecturerID)
}

func TestFeedbackServiceCreateMissingReport(t *testing.T) {
	repo := &mockFeedbackRepo{}
	svc := NewFeedbackService(repo, &mockReportFinder{}, nil, nil)

	_, err := svc.Create(context.Background(), principalClaims(), CreateFeedbackRequest{
		ReportID:     99,
		FeedbackText: "orphan feedback",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Report not found", appErr.Message)
	// Nothing may be written when the target report is missing.
	assert.Empty(t, repo.feedback)
}

func TestFeedbackServiceCreateForbidden(t *testing.T) {
	svc := NewFeedbackService(&mockFeedbackRepo{}, &mockReportFinder{ids: map[int64]bool{21: true}}, nil, nil)

	for _, role := range []models.Role{models.RoleStudent, models.RoleLecturer, models.RoleProgramLeader} {
		_, err := svc.Create(context.Background(), &models.JWTClaims{UserID: 1, Role: role}, CreateFeedbackRequest{
			ReportID:     21,
			FeedbackText: "not allowed",
		})
		require.Error(t, err, string(role))
		assert.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)
	}
}

func TestFeedbackServiceRatingBounds(t *testing.T) {
	svc := NewFeedbackService(&mockFeedbackRepo{}, &mockReportFinder{ids: map[int64]bool{21: true}}, nil, nil)

	for _, rating := range []int{0, 6, -1} {
		r := rating
		_, err := svc.Create(context.Background(), principalClaims(), CreateFeedbackRequest{
			ReportID:     21,
			FeedbackText: "rated",
			Rating:       &r,
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
	}

	// Absent rating is fine.
	_, err := svc.Create(context.Background(), principalClaims(), CreateFeedbackRequest{
		ReportID:     21,
		FeedbackText: "unrated",
	})
	require.NoError(t, err)
}

func TestFeedbackServiceAppendOnly(t *testing.T) {
	repo := &mockFeedbackRepo{}
	svc := NewFeedbackService(repo, &mockReportFinder{ids: map[int64]bool{21: true}}, nil, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), principalClaims(), CreateFeedbackRequest{
			ReportID:     21,
			FeedbackText: "round two",
		})
		require.NoError(t, err)
	}

	feedback, err := svc.ListByReport(context.Background(), 21)
	require.NoError(t, err)
	require.Len(t, feedback, 2)
}

func TestFeedbackServiceUpdateMissing(t *testing.T) {
	svc := NewFeedbackService(&mockFeedbackRepo{}, &mockReportFinder{}, nil, nil)

	err := svc.Update(context.Background(), principalClaims(), 99, UpdateFeedbackRequest{FeedbackText: "updated"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Feedback not found", appErr.Message)
}
