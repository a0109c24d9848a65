package handlers

import (
	"context"
	"net/http"
	"strings"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type AdminService interface {
	Stats(ctx context.Context, rng *domain.DateRange) (models.AdminStats, error)
	Analytics(ctx context.Context, rng *domain.DateRange) (models.Analytics, error)
	CustomerAnalytics(ctx context.Context) (models.CustomerAnalytics, error)
}

type UserService interface {
	Get(ctx context.Context, id string) (models.Profile, error)
	SyncFromIdentity(ctx context.Context, ident domain.Identity) (models.Profile, error)
}

type AdminHandler struct {
	Svc   AdminService
	Users UserService
}

// GET /api/admin/stats
// from/to are an optional ISO date pair; one without the other is a 400.
func (h AdminHandler) Stats(c *gin.Context) {
	rng, err := domain.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		RespondDomainError(c, "load stats", err)
		return
	}

	stats, err := h.Svc.Stats(c.Request.Context(), rng)
	if err != nil {
		RespondDomainError(c, "load stats", err)
		return
	}
	respondData(c, http.StatusOK, stats)
}

// GET /api/admin/analytics
func (h AdminHandler) Analytics(c *gin.Context) {
	rng, err := domain.ParseDateRange(c.Query("dateFrom"), c.Query("dateTo"))
	if err != nil {
		RespondDomainError(c, "load analytics", err)
		return
	}

	analytics, err := h.Svc.Analytics(c.Request.Context(), rng)
	if err != nil {
		RespondDomainError(c, "load analytics", err)
		return
	}
	respondData(c, http.StatusOK, analytics)
}

// GET /api/admin/analytics/customers
func (h AdminHandler) CustomerAnalytics(c *gin.Context) {
	analytics, err := h.Svc.CustomerAnalytics(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "load customer analytics", err)
		return
	}
	respondData(c, http.StatusOK, analytics)
}

// GET /api/admin/users/:id
func (h AdminHandler) UserByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	profile, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "load user", err)
		return
	}
	respondData(c, http.StatusOK, profile)
}
