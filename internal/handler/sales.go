package handler

import (
	"net/http"

	"shopstock/internal/dto"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// RecordSale godoc
// @Summary Record a sale and decrement product stock atomically
// @Tags sales
// @Accept json
// @Produce json
// @Param body body dto.RecordSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/sales [post]
func (h *SalesHandler) RecordSale(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RecordSale(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SalesHandler) List(c *gin.Context) {
	resp, err := h.svc.ListSales(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
