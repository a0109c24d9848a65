package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "restaurant/internal/config"
	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r InvoiceRepository) Insert(ctx context.Context, inv *models.Invoice) error {
	res, err := r.db().ExecContext(ctx, `
        INSERT INTO invoices (order_id, number, customer_name, amount, paid, issued_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, inv.OrderID, inv.Number, inv.CustomerName, inv.Amount, inv.Paid, inv.IssuedAt)
	if err != nil {
		return err
	}
	inv.ID, _ = res.LastInsertId()
	return nil
}

func (r InvoiceRepository) GetByID(ctx context.Context, id int64) (models.Invoice, error) {
	var inv models.Invoice
	err := r.db().QueryRowContext(ctx, `
        SELECT id, order_id, number, customer_name, amount, paid, issued_at
        FROM invoices
        WHERE id = ?
    `, id).Scan(&inv.ID, &inv.OrderID, &inv.Number, &inv.CustomerName, &inv.Amount, &inv.Paid, &inv.IssuedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return inv, domain.NotFoundError{Resource: "invoice", Err: err}
	}
	return inv, err
}

func (r InvoiceRepository) Stats(ctx context.Context, rng *domain.DateRange) (models.InvoiceStats, error) {
	var s models.InvoiceStats
	clause, args := rangeClause("issued_at", rng, nil)
	err := r.db().QueryRowContext(ctx, `
        SELECT COUNT(*),
               COALESCE(SUM(paid), 0),
               COALESCE(SUM(amount), 0),
               COALESCE(SUM(CASE WHEN paid = 1 THEN amount ELSE 0 END), 0)
        FROM invoices
        WHERE 1=1`+clause, args...,
	).Scan(&s.TotalInvoices, &s.PaidInvoices, &s.TotalAmount, &s.PaidAmount)
	if err != nil {
		return s, err
	}
	s.UnpaidAmount = s.TotalAmount - s.PaidAmount
	return s, nil
}
