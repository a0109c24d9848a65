package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"restaurant/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// MenuService is the slice of the menu facade this handler needs.
type MenuService interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]models.MenuCategory, error)
	GetItem(ctx context.Context, id int64) (models.MenuItem, error)
	Search(ctx context.Context, term string) ([]models.MenuItem, error)
	Statistics(ctx context.Context) (models.MenuStatistics, error)
}

type MenuHandler struct {
	Svc MenuService
}

// GET /api/menu/categories
// activeOnly defaults to false; only the exact string "true" enables it.
func (h MenuHandler) Categories(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"

	categories, err := h.Svc.ListCategories(c.Request.Context(), activeOnly)
	if err != nil {
		RespondDomainError(c, "load menu categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /api/menu/items/:id
func (h MenuHandler) ItemByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}

	item, err := h.Svc.GetItem(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "load menu item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GET /api/menu/search
// An empty term short-circuits to an empty result set; the facade is not
// called, avoiding an accidental match-everything query.
func (h MenuHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		c.JSON(http.StatusOK, []models.MenuItem{})
		return
	}

	items, err := h.Svc.Search(c.Request.Context(), term)
	if err != nil {
		RespondDomainError(c, "search menu", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/admin/menu/statistics
func (h MenuHandler) Statistics(c *gin.Context) {
	stats, err := h.Svc.Statistics(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "load menu statistics", err)
		return
	}
	respondData(c, http.StatusOK, stats)
}
