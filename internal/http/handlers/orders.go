package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/http/middleware"
	"restaurant/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderService interface {
	Create(ctx context.Context, userID string, in services.CreateOrderInput) (models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	Get(ctx context.Context, id int64, requester domain.Identity) (models.Order, error)
	ListAll(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, next string) (models.Order, error)
}

type OrdersHandler struct {
	Svc OrderService
}

// POST /api/orders
func (h OrdersHandler) Create(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req services.CreateOrderInput
	if !BindJSONOrError(c, &req) {
		return
	}

	order, err := h.Svc.Create(c.Request.Context(), ident.UserID, req)
	if err != nil {
		RespondDomainError(c, "create order", err)
		return
	}
	respondData(c, http.StatusCreated, order)
}

// GET /api/orders
func (h OrdersHandler) ListMine(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.Svc.ListByUser(c.Request.Context(), ident.UserID)
	if err != nil {
		RespondDomainError(c, "load orders", err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

// GET /api/orders/:id
func (h OrdersHandler) Get(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.Svc.Get(c.Request.Context(), id, ident)
	if err != nil {
		RespondDomainError(c, "load order", err)
		return
	}
	respondData(c, http.StatusOK, order)
}

// GET /api/admin/orders
func (h OrdersHandler) AdminList(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))

	orders, err := h.Svc.ListAll(c.Request.Context(), status)
	if err != nil {
		RespondDomainError(c, "load orders", err)
		return
	}
	respondData(c, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/admin/orders/:id/status
func (h OrdersHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	order, err := h.Svc.UpdateStatus(c.Request.Context(), id, strings.TrimSpace(req.Status))
	if err != nil {
		RespondDomainError(c, "update order status", err)
		return
	}
	respondData(c, http.StatusOK, order)
}
