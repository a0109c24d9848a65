package handlers

import (
	"context"
	"net/http"
	"strconv"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type InvoiceService interface {
	Stats(ctx context.Context, rng *domain.DateRange) (models.InvoiceStats, error)
	GeneratePDF(ctx context.Context, id int64) ([]byte, string, error)
}

type InvoicesHandler struct {
	Svc InvoiceService
}

// GET /api/admin/invoices/stats
func (h InvoicesHandler) Stats(c *gin.Context) {
	rng, err := domain.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, "load invoice stats", err)
		return
	}

	stats, err := h.Svc.Stats(c.Request.Context(), rng)
	if err != nil {
		RespondDomainError(c, "load invoice stats", err)
		return
	}
	respondData(c, http.StatusOK, stats)
}

// GET /api/admin/invoices/:id/pdf
func (h InvoicesHandler) PDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	pdfBytes, filename, err := h.Svc.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "generate invoice", err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
