package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luct-ict/reporting-api/internal/service"
	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
	"github.com/luct-ict/reporting-api/pkg/response"
)

// ExportHandler streams rendered report exports as file downloads.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Reports godoc
// @Summary Export reports for a date range
// @Description Render the reports between startDate and endDate as a downloadable file
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param format query string false "File format" Enums(xlsx, csv, pdf) default(xlsx)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /export/reports [get]
func (h *ExportHandler) Reports(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	file, err := h.service.ExportReports(c.Request.Context(), claims,
		c.Query("startDate"), c.Query("endDate"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
