package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/profileiq/profileiq-backend/internal/core/ports/services"
	"github.com/profileiq/profileiq-backend/internal/dto"
	"github.com/profileiq/profileiq-backend/internal/middleware"
)

// reportingHandler handles the dashboard's read-only reporting endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	credits := rg.Group("/credits")
	{
		credits.GET("/summary", h.getCreditSummary)
		credits.GET("/transactions", h.listTransactions)
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getDashboardStats)
	}
}

// getCreditSummary godoc
// @Summary Credit summary
// @Description Computes the roll-up for the credit dashboard cards
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.CreditSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute credit summary"
// @Security BearerAuth
// @Router /credits/summary [get]
func (h *reportingHandler) getCreditSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.CreditSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute credit summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute credit summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditSummaryResponse(summary))
}

// listTransactions godoc
// @Summary Cross-client transaction feed
// @Description Returns usage records across all clients, newest first, limited to the requested day window
// @Tags reporting
// @Produce json
// @Param days query int false "Window in days" default(30)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /credits/transactions [get]
func (h *reportingHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	feed, err := h.reportingService.FilteredTransactions(c.Request.Context(), params.Days)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(feed))
}

// getDashboardStats godoc
// @Summary Dashboard statistics
// @Description Composes the credit summary with questionnaire and profile counts
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute dashboard stats"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.DashboardStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
