package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-service/internal/domain"
	"blog-service/internal/logger"
	"blog-service/internal/middleware"
	"blog-service/internal/service"
)

// ExportHandler streams article exports. Staff only.
type ExportHandler struct {
	exports service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exports service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Export handles GET /articles/export?format=csv|ndjson. Rows are written to
// the response as they come off the database cursor.
func (h *ExportHandler) Export(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil || !actor.IsStaff {
		writeError(c, domain.ErrForbidden)
		return
	}

	format := c.DefaultQuery("format", service.FormatCSV)

	switch format {
	case service.FormatCSV:
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="articles.csv"`)
	case service.FormatNDJSON:
		c.Header("Content-Type", "application/x-ndjson")
		c.Header("Content-Disposition", `attachment; filename="articles.ndjson"`)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or ndjson"})
		return
	}

	c.Status(http.StatusOK)

	if err := h.exports.StreamArticles(c.Request.Context(), format, c.Writer); err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			return
		}
		// Headers are already out; all we can do is log and cut the stream
		logger.Error("article export failed", "format", format, "error", err)
	}
}
