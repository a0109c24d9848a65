package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	intconfig "restaurant/internal/config"
	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
)

type OfferRepository struct {
	DB *sql.DB
}

func (r OfferRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const offerColumns = `id, code, title, COALESCE(description,''), discount_type, discount_value, min_order_amount, popup, active, starts_at, ends_at`

func scanOffer(row *sql.Row) (models.Offer, error) {
	var o models.Offer
	err := row.Scan(&o.ID, &o.Code, &o.Title, &o.Description, &o.DiscountType, &o.DiscountValue,
		&o.MinOrderAmount, &o.Popup, &o.Active, &o.StartsAt, &o.EndsAt)
	return o, err
}

func (r OfferRepository) GetByID(ctx context.Context, id int64) (models.Offer, error) {
	o, err := scanOffer(r.db().QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return o, domain.NotFoundError{Resource: "offer", Err: err}
	}
	return o, err
}

// ActivePopup returns the current popup promotion, or nil when none is live.
func (r OfferRepository) ActivePopup(ctx context.Context, now time.Time) (*models.Offer, error) {
	o, err := scanOffer(r.db().QueryRowContext(ctx, `
        SELECT `+offerColumns+`
        FROM offers
        WHERE popup = 1 AND active = 1 AND starts_at <= ? AND ends_at > ?
        ORDER BY starts_at DESC
        LIMIT 1
    `, now, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
