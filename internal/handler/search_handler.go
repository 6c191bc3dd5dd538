package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luct-ict/reporting-api/internal/service"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
	"github.com/luct-ict/reporting-api/pkg/response"
)

// SearchHandler wires the cross-entity search endpoint.
type SearchHandler struct {
	service *service.SearchService
}

// NewSearchHandler creates a new handler.
func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search godoc
// @Summary Search reports, courses or classes
// @Description Case-insensitive substring search; lecturer results are scoped to their own rows
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Param type query string true "Entity type" Enums(reports, courses, classes)
// @Success 200 {array} interface{}
// @Failure 400 {object} map[string]string
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	results, err := h.service.Search(c.Request.Context(), claims, c.Query("q"), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, results)
}
