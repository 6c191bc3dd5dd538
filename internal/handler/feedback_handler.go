package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luct-ict/reporting-api/internal/service"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
	"github.com/luct-ict/reporting-api/pkg/response"
)

// FeedbackHandler wires the principal-lecturer feedback endpoints.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler creates a new handler.
func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: svc}
}

// Create godoc
// @Summary Add feedback to a report
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /feedback [post]
func (h *FeedbackHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	feedbackID, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message":    "Feedback added successfully",
		"feedbackId": feedbackID,
	})
}

// ListByReport godoc
// @Summary List feedback for a report
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Param reportId path int true "Report ID"
// @Success 200 {array} models.FeedbackDetail
// @Router /feedback/report/{reportId} [get]
func (h *FeedbackHandler) ListByReport(c *gin.Context) {
	reportID, err := pathID(c, "reportId")
	if err != nil {
		response.Error(c, err)
		return
	}

	feedback, err := h.service.ListByReport(c.Request.Context(), reportID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, feedback)
}

// Update godoc
// @Summary Update a feedback entry
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Param payload body service.UpdateFeedbackRequest true "Feedback payload"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /feedback/{id} [put]
func (h *FeedbackHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	if err := h.service.Update(c.Request.Context(), claims, id, req); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Feedback updated successfully"})
}
