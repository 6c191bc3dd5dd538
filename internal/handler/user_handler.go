package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luct-ict/reporting-api/internal/service"
	"github.com/luct-ict/reporting-api/pkg/response"
)

// UserHandler wires the read-only user directory.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserInfo
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Lecturers godoc
// @Summary List lecturers
// @Description Slim directory used by the assignment screens
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Lecturer
// @Router /users/lecturers [get]
func (h *UserHandler) Lecturers(c *gin.Context) {
	lecturers, err := h.service.Lecturers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lecturers)
}
