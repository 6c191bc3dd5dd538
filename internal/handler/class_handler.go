package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luct-ict/reporting-api/internal/service"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
	"github.com/luct-ict/reporting-api/pkg/response"
)

// ClassHandler wires the class listing endpoints.
type ClassHandler struct {
	service *service.ClassService
}

// NewClassHandler creates a new handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List classes
// @Description Lecturers see their own sections, other roles all of them
// @Tags Classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ClassDetail
// @Failure 401 {object} map[string]string
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	classes, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classes)
}

// Get godoc
// @Summary Fetch one class
// @Tags Classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} models.ClassDetail
// @Failure 404 {object} map[string]string
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	class, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, class)
}
