package dataset

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendlens/spendlens/internal/service"
)

// Handler handles dataset API requests
type Handler struct {
	datasetService *service.DatasetService
}

// NewHandler creates a new dataset handler
func NewHandler(datasetService *service.DatasetService) *Handler {
	return &Handler{datasetService: datasetService}
}

// RegisterRoutes registers dataset routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/data", h.GetData)
	r.GET("/stats", h.GetStats)
}

// GetData returns the full dataset as an array of column-keyed records
func (h *Handler) GetData(c *gin.Context) {
	rows, err := h.datasetService.Rows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetStats returns record and query totals
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.datasetService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
