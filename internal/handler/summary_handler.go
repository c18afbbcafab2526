package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"warga-registry-svc/internal/service"
	"warga-registry-svc/pkg/logger"
	"warga-registry-svc/pkg/response"
)

// SummaryHandler handles registry statistics HTTP requests
type SummaryHandler struct {
	summaryService service.SummaryService
	writer         *response.Writer
	logger         *logger.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService service.SummaryService, writer *response.Writer, logger *logger.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		writer:         writer,
		logger:         logger,
	}
}

// GetRegistrySummary handles GET /warga/summary
// @Summary Get registry summary
// @Description Aggregate statistics over the warga registry with an optional RT filter
// @Tags warga
// @Accept json
// @Produce json
// @Param rt query int false "Limit totals to one RT"
// @Success 200 {object} response.APIResponse{data=response.RegistrySummaryResponse} "Registry summary"
// @Failure 400 {object} response.APIResponse "Invalid RT parameter"
// @Failure 500 {object} response.APIResponse "Internal server error"
// @Router /warga/summary [get]
func (h *SummaryHandler) GetRegistrySummary(c *gin.Context) {
	var rt *int
	if rtStr := c.Query("rt"); rtStr != "" {
		rtValue, err := strconv.Atoi(rtStr)
		if err != nil || rtValue <= 0 {
			h.logger.WithField("rt", rtStr).Error("Invalid RT parameter")
			h.writer.BadRequest(c, "parameter rt harus berupa angka positif")
			return
		}
		rt = &rtValue
	}

	h.logger.Info("Incoming get registry summary")

	summary, err := h.summaryService.GetRegistrySummary(rt)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get registry summary")
		h.writer.InternalError(c)
		return
	}

	h.logger.WithField("total_warga", summary.TotalWarga).Info("Outgoing registry summary")
	h.writer.Approved(c, summary)
}
