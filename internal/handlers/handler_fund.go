package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/campusfunds/event_funds_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RecomputePublisher enqueues a cashbook recompute for asynchronous
// processing. Nil when no message broker is configured.
type RecomputePublisher interface {
	PublishRecompute(ctx context.Context, cashbookID, reason string) error
}

// fundHandler handles HTTP requests for cashbooks, fund data and the ledger.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
	exporter    portssvc.LedgerExporterSvc
	publisher   RecomputePublisher
}

// newFundHandler creates a new fundHandler.
func newFundHandler(fs portssvc.FundSvcFacade, exporter portssvc.LedgerExporterSvc, publisher RecomputePublisher) *fundHandler {
	return &fundHandler{
		fundService: fs,
		exporter:    exporter,
		publisher:   publisher,
	}
}

// registerFundRoutes registers the public cashbook read routes.
func registerFundRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService, nil, nil)

	rg.GET("/cashbooks", h.listCashbooks)
	rg.GET("/cashbooks/:cashbookID", h.getCashbookByID)
	rg.GET("/cashbooks/:cashbookID/funds", h.getFundData)
}

// registerFundAdminRoutes registers the guarded ledger write routes.
func registerFundAdminRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade, exporter portssvc.LedgerExporterSvc, publisher RecomputePublisher) {
	h := newFundHandler(fundService, exporter, publisher)

	rg.POST("/cashbooks", h.createCashbook)
	rg.DELETE("/cashbooks/:cashbookID", h.deleteCashbook)
	rg.POST("/cashbooks/:cashbookID/transactions", h.createTransaction)
	rg.POST("/cashbooks/:cashbookID/recompute", h.recomputeCashbook)
	rg.POST("/cashbooks/:cashbookID/export", h.exportCashbook)
}

// listCashbooks godoc
// @Summary List cashbooks
// @Description Without ids returns every cashbook. With ids serves the subset from the cached full collection, fetching and caching it first when stale.
// @Tags funds
// @Produce json
// @Param ids query string false "Comma separated cashbook IDs"
// @Success 200 {array} dto.CashbookResponse
// @Failure 500 {object} map[string]string "Failed to list cashbooks"
// @Router /cashbooks [get]
func (h *fundHandler) listCashbooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var ids []string
	if raw := c.Query("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	cashbooks, err := h.fundService.GetCashbooksByIDs(c.Request.Context(), ids)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list cashbooks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCashbookResponse(cashbooks))
}

// getCashbookByID godoc
// @Summary Get one cashbook
// @Description Always reads the data source so aggregates are current.
// @Tags funds
// @Produce json
// @Param cashbookID path string true "Cashbook ID"
// @Success 200 {object} dto.CashbookResponse
// @Failure 404 {object} map[string]string "Cashbook not found"
// @Router /cashbooks/{cashbookID} [get]
func (h *fundHandler) getCashbookByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashbookID := c.Param("cashbookID")

	cashbook, err := h.fundService.GetCashbookByID(c.Request.Context(), cashbookID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get cashbook")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashbookResponse(cashbook))
}

// getFundData godoc
// @Summary Get a cashbook with its full transaction list
// @Tags funds
// @Produce json
// @Param cashbookID path string true "Cashbook ID"
// @Success 200 {object} dto.FundDataResponse
// @Failure 404 {object} map[string]string "Cashbook not found"
// @Router /cashbooks/{cashbookID}/funds [get]
func (h *fundHandler) getFundData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashbookID := c.Param("cashbookID")

	fundData, err := h.fundService.GetFundData(c.Request.Context(), cashbookID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get fund data")
		return
	}

	c.JSON(http.StatusOK, dto.ToFundDataResponse(fundData))
}

// createCashbook godoc
// @Summary Register a cashbook
// @Description Creates an empty cashbook, or reseeds the aggregates when the id already exists.
// @Tags funds
// @Accept json
// @Produce json
// @Param cashbook body dto.CreateCashbookRequest true "Cashbook details"
// @Success 201 {object} dto.CashbookResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /cashbooks [post]
func (h *fundHandler) createCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCashbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCashbook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cashbook, err := h.fundService.CreateCashbook(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create cashbook")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashbookResponse(cashbook))
}

// deleteCashbook godoc
// @Summary Delete a cashbook
// @Description Fails with 409 while events or transactions still reference the cashbook.
// @Tags funds
// @Produce json
// @Param cashbookID path string true "Cashbook ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Cashbook not found"
// @Failure 409 {object} map[string]string "Cashbook is still referenced"
// @Security BearerAuth
// @Router /cashbooks/{cashbookID} [delete]
func (h *fundHandler) deleteCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashbookID := c.Param("cashbookID")

	if err := h.fundService.DeleteCashbook(c.Request.Context(), cashbookID); err != nil {
		respondWithError(c, logger, err, "Failed to delete cashbook")
		return
	}

	c.Status(http.StatusNoContent)
}

// createTransaction godoc
// @Summary Record a ledger transaction
// @Description Inserts the transaction and recomputes the cashbook aggregates atomically.
// @Tags funds
// @Accept json
// @Produce json
// @Param cashbookID path string true "Cashbook ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Cashbook not found"
// @Security BearerAuth
// @Router /cashbooks/{cashbookID}/transactions [post]
func (h *fundHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashbookID := c.Param("cashbookID")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.fundService.CreateTransaction(c.Request.Context(), cashbookID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// recomputeCashbook godoc
// @Summary Rebuild a cashbook's aggregates from its transactions
// @Description With a broker configured the recompute is enqueued and processed by the worker (202). Otherwise it runs inline and returns the repaired cashbook.
// @Tags funds
// @Produce json
// @Param cashbookID path string true "Cashbook ID"
// @Success 200 {object} dto.CashbookResponse
// @Success 202 {object} map[string]string "Recompute enqueued"
// @Failure 404 {object} map[string]string "Cashbook not found"
// @Security BearerAuth
// @Router /cashbooks/{cashbookID}/recompute [post]
func (h *fundHandler) recomputeCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashbookID := c.Param("cashbookID")

	if h.publisher != nil {
		if err := h.publisher.PublishRecompute(c.Request.Context(), cashbookID, "manual"); err != nil {
			logger.Error("Failed to enqueue recompute, falling back to inline",
				slog.String("cashbookID", cashbookID), slog.String("error", err.Error()))
		} else {
			c.JSON(http.StatusAccepted, gin.H{"status": "recompute enqueued", "cashbookID": cashbookID})
			return
		}
	}

	cashbook, err := h.fundService.RecomputeCashbook(c.Request.Context(), cashbookID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to recompute cashbook")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashbookResponse(cashbook))
}

// exportCashbook godoc
// @Summary Export a cashbook's ledger to the configured spreadsheet
// @Tags funds
// @Produce json
// @Param cashbookID path string true "Cashbook ID"
// @Success 200 {object} map[string]interface{} "Rows appended"
// @Failure 404 {object} map[string]string "Cashbook not found"
// @Failure 503 {object} map[string]string "Export not configured"
// @Security BearerAuth
// @Router /cashbooks/{cashbookID}/export [post]
func (h *fundHandler) exportCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashbookID := c.Param("cashbookID")

	if h.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Spreadsheet export is not configured"})
		return
	}

	rows, err := h.exporter.ExportCashbook(c.Request.Context(), cashbookID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to export cashbook")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "exported", "cashbookID": cashbookID, "rows": rows})
}
