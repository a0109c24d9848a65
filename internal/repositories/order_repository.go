package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "restaurant/internal/config"
	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
)

type OrderRepository struct {
	DB *sql.DB
}

func (r OrderRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts the order and its items in one transaction and fills in the
// generated id.
func (r OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO orders (user_id, status, subtotal, discount, total, offer_id, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, order.UserID, order.Status, order.Subtotal, order.Discount, order.Total, order.OfferID)
	if err != nil {
		return err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = orderID
		ires, err := tx.ExecContext(ctx, `
            INSERT INTO order_items (order_id, menu_item_id, name, unit_price, quantity)
            VALUES (?, ?, ?, ?, ?)
        `, orderID, item.MenuItemID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return err
		}
		item.ID, _ = ires.LastInsertId()
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	order.ID = orderID
	return nil
}

func (r OrderRepository) GetByID(ctx context.Context, id int64) (models.Order, error) {
	var o models.Order
	err := r.db().QueryRowContext(ctx, `
        SELECT id, user_id, status, subtotal, discount, total, offer_id, created_at, updated_at
        FROM orders
        WHERE id = ?
    `, id).Scan(&o.ID, &o.UserID, &o.Status, &o.Subtotal, &o.Discount, &o.Total, &o.OfferID, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return o, domain.NotFoundError{Resource: "order", Err: err}
	}
	if err != nil {
		return o, err
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return o, err
	}
	o.Items = items
	return o, nil
}

func (r OrderRepository) listItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := r.db().QueryContext(ctx, `
        SELECT id, order_id, menu_item_id, name, unit_price, quantity
        FROM order_items
        WHERE order_id = ?
        ORDER BY id
    `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r OrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.list(ctx, `WHERE user_id = ?`, userID)
}

// ListAll optionally filters by status; empty status means everything.
func (r OrderRepository) ListAll(ctx context.Context, status string) ([]models.Order, error) {
	if status == "" {
		return r.list(ctx, ``)
	}
	return r.list(ctx, `WHERE status = ?`, status)
}

func (r OrderRepository) list(ctx context.Context, where string, args ...any) ([]models.Order, error) {
	rows, err := r.db().QueryContext(ctx, `
        SELECT id, user_id, status, subtotal, discount, total, offer_id, created_at, updated_at
        FROM orders `+where+`
        ORDER BY created_at DESC, id DESC
        LIMIT 200
    `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Subtotal, &o.Discount, &o.Total, &o.OfferID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db().ExecContext(ctx, `
        UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?
    `, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "order"}
	}
	return nil
}

func rangeClause(column string, rng *domain.DateRange, args []any) (string, []any) {
	if rng == nil {
		return "", args
	}
	return " AND " + column + " >= ? AND " + column + " < ?", append(args, rng.From, rng.To)
}

func (r OrderRepository) Stats(ctx context.Context, rng *domain.DateRange) (models.AdminStats, error) {
	var s models.AdminStats
	clause, args := rangeClause("created_at", rng, nil)
	err := r.db().QueryRowContext(ctx, `
        SELECT COUNT(*),
               COALESCE(SUM(status = 'completed'), 0),
               COALESCE(SUM(status = 'cancelled'), 0),
               COALESCE(SUM(CASE WHEN status = 'completed' THEN total ELSE 0 END), 0)
        FROM orders
        WHERE 1=1`+clause, args...,
	).Scan(&s.TotalOrders, &s.CompletedOrders, &s.CancelledOrders, &s.TotalRevenue)
	if err != nil {
		return s, err
	}
	if s.CompletedOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / s.CompletedOrders
	}
	return s, nil
}

func (r OrderRepository) DailyRevenue(ctx context.Context, rng *domain.DateRange) ([]models.DailyRevenue, error) {
	clause, args := rangeClause("created_at", rng, nil)
	rows, err := r.db().QueryContext(ctx, `
        SELECT DATE_FORMAT(created_at, '%Y-%m-%d'), COUNT(*),
               COALESCE(SUM(CASE WHEN status = 'completed' THEN total ELSE 0 END), 0)
        FROM orders
        WHERE 1=1`+clause+`
        GROUP BY DATE_FORMAT(created_at, '%Y-%m-%d')
        ORDER BY 1
    `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DailyRevenue{}
	for rows.Next() {
		var d models.DailyRevenue
		if err := rows.Scan(&d.Date, &d.Orders, &d.Revenue); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r OrderRepository) TopItems(ctx context.Context, rng *domain.DateRange, limit int) ([]models.ItemSales, error) {
	clause, args := rangeClause("o.created_at", rng, nil)
	args = append(args, limit)
	rows, err := r.db().QueryContext(ctx, `
        SELECT i.menu_item_id, i.name, SUM(i.quantity), SUM(i.unit_price * i.quantity)
        FROM order_items i
        JOIN orders o ON o.id = i.order_id
        WHERE o.status <> 'cancelled'`+clause+`
        GROUP BY i.menu_item_id, i.name
        ORDER BY SUM(i.quantity) DESC
        LIMIT ?
    `, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ItemSales{}
	for rows.Next() {
		var s models.ItemSales
		if err := rows.Scan(&s.ItemID, &s.Name, &s.Quantity, &s.Revenue); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r OrderRepository) TopCustomers(ctx context.Context, limit int) ([]models.CustomerSpend, error) {
	rows, err := r.db().QueryContext(ctx, `
        SELECT o.user_id, COALESCE(u.name, ''), COUNT(*), COALESCE(SUM(o.total), 0)
        FROM orders o
        LEFT JOIN users u ON u.id = o.user_id
        WHERE o.status = 'completed'
        GROUP BY o.user_id, u.name
        ORDER BY SUM(o.total) DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CustomerSpend{}
	for rows.Next() {
		var c models.CustomerSpend
		if err := rows.Scan(&c.UserID, &c.Name, &c.Orders, &c.Spend); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
