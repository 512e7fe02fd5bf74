package handler

import (
	"net/http"
	"strconv"

	"shopstock/internal/dto"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultLowStockThreshold = 5

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) TotalSales(c *gin.Context) {
	total, err := h.svc.TotalSales(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TotalSalesResponse{TotalSales: total})
}

func (h *ReportsHandler) TotalProfit(c *gin.Context) {
	profit, err := h.svc.TotalProfit(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TotalProfitResponse{TotalProfit: profit})
}

// LowStock returns products at or below the threshold (inclusive boundary).
// Malformed or missing threshold falls back to the default, matching the
// lenient query parsing of the dashboard UI.
func (h *ReportsHandler) LowStock(c *gin.Context) {
	threshold := defaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			threshold = n
		}
	}
	resp, err := h.svc.LowStock(c.Request.Context(), threshold)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
