package handlers

import (
	"net/http"

	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/campusfunds/event_funds_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for dashboard statistics.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard/stats", h.getDashboardStats)
}

// getDashboardStats godoc
// @Summary Dashboard statistics
// @Description Counts events per lifecycle status and totals funds across all cashbooks. Always computed from the data source.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} map[string]string "Failed to compute dashboard stats"
// @Router /dashboard/stats [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
