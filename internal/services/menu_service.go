package services

import (
	"context"
	"fmt"
	"strings"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"
	"restaurant/internal/utils"
)

type MenuService struct {
	Repo      repositories.MenuRepository
	OrderRepo repositories.OrderRepository
}

func (s MenuService) ListCategories(ctx context.Context, activeOnly bool) ([]models.MenuCategory, error) {
	return s.Repo.ListCategories(ctx, activeOnly)
}

func (s MenuService) GetItem(ctx context.Context, id int64) (models.MenuItem, error) {
	if id <= 0 {
		return models.MenuItem{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	return s.Repo.GetItemByID(ctx, id)
}

func (s MenuService) Search(ctx context.Context, term string) ([]models.MenuItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.MenuItem{}, nil
	}
	utils.LogEventCtx(ctx, "menu", "search", "q="+term)
	return s.Repo.SearchItems(ctx, term)
}

func (s MenuService) Statistics(ctx context.Context) (models.MenuStatistics, error) {
	var out models.MenuStatistics

	total, active, categories, err := s.Repo.ItemTotals(ctx)
	if err != nil {
		return out, fmt.Errorf("menu totals: %w", err)
	}
	out.TotalItems = total
	out.ActiveItems = active
	out.TotalCategories = categories

	if out.ByCategory, err = s.Repo.CountsByCategory(ctx); err != nil {
		return out, fmt.Errorf("category counts: %w", err)
	}
	if out.MostOrdered, err = s.OrderRepo.TopItems(ctx, nil, 10); err != nil {
		return out, fmt.Errorf("most ordered: %w", err)
	}
	return out, nil
}
