package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "restaurant/internal/config"
	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
)

type MenuRepository struct {
	DB *sql.DB
}

func (r MenuRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MenuRepository) ListCategories(ctx context.Context, activeOnly bool) ([]models.MenuCategory, error) {
	query := `
        SELECT id, name, COALESCE(description,''), display_order, active, created_at
        FROM menu_categories`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MenuCategory{}
	for rows.Next() {
		var c models.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r MenuRepository) GetItemByID(ctx context.Context, id int64) (models.MenuItem, error) {
	var it models.MenuItem
	err := r.db().QueryRowContext(ctx, `
        SELECT id, category_id, name, COALESCE(description,''), price, COALESCE(image_url,''), active, created_at, updated_at
        FROM menu_items
        WHERE id = ?
    `, id).Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.ImageURL, &it.Active, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return it, domain.NotFoundError{Resource: "menu item", Err: err}
	}
	return it, err
}

func (r MenuRepository) SearchItems(ctx context.Context, term string) ([]models.MenuItem, error) {
	like := "%" + strings.TrimSpace(term) + "%"
	rows, err := r.db().QueryContext(ctx, `
        SELECT id, category_id, name, COALESCE(description,''), price, COALESCE(image_url,''), active, created_at, updated_at
        FROM menu_items
        WHERE active = 1 AND (name LIKE ? OR description LIKE ?)
        ORDER BY name
        LIMIT 50
    `, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MenuItem{}
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.ImageURL, &it.Active, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// GetItemsByIDs loads active items for order pricing; missing or inactive ids
// surface as a validation error at the service layer, not here.
func (r MenuRepository) GetItemsByIDs(ctx context.Context, ids []int64) (map[int64]models.MenuItem, error) {
	out := map[int64]models.MenuItem{}
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := strings.TrimRight(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := r.db().QueryContext(ctx, fmt.Sprintf(`
        SELECT id, category_id, name, COALESCE(description,''), price, COALESCE(image_url,''), active, created_at, updated_at
        FROM menu_items
        WHERE id IN (%s)
    `, placeholders), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.ImageURL, &it.Active, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out[it.ID] = it
	}
	return out, rows.Err()
}

func (r MenuRepository) ItemTotals(ctx context.Context) (total, active, categories int64, err error) {
	err = r.db().QueryRowContext(ctx, `
        SELECT
            (SELECT COUNT(*) FROM menu_items),
            (SELECT COUNT(*) FROM menu_items WHERE active = 1),
            (SELECT COUNT(*) FROM menu_categories)
    `).Scan(&total, &active, &categories)
	return
}

func (r MenuRepository) CountsByCategory(ctx context.Context) ([]models.CategoryItemCount, error) {
	rows, err := r.db().QueryContext(ctx, `
        SELECT c.id, c.name, COUNT(i.id), COALESCE(SUM(i.active), 0)
        FROM menu_categories c
        LEFT JOIN menu_items i ON i.category_id = c.id
        GROUP BY c.id, c.name
        ORDER BY c.display_order, c.id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CategoryItemCount{}
	for rows.Next() {
		var c models.CategoryItemCount
		if err := rows.Scan(&c.CategoryID, &c.CategoryName, &c.ItemCount, &c.ActiveItems); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
