package services

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"
	"restaurant/internal/utils"
)

type OffersService struct {
	Repo repositories.OfferRepository
	Now  func() time.Time
}

func (s OffersService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Apply validates the offer against the order amount and computes the discount.
func (s OffersService) Apply(ctx context.Context, offerID, orderAmount int64) (models.DiscountResult, error) {
	var out models.DiscountResult
	if offerID <= 0 {
		return out, domain.ValidationError{Field: "offerId", Msg: "must be a positive integer"}
	}
	if orderAmount <= 0 {
		return out, domain.ValidationError{Field: "orderAmount", Msg: "must be greater than zero"}
	}

	offer, err := s.Repo.GetByID(ctx, offerID)
	if err != nil {
		return out, err
	}

	discount, err := computeDiscount(offer, orderAmount, s.now())
	if err != nil {
		return out, err
	}

	utils.LogEventCtx(ctx, "offers", "apply",
		fmt.Sprintf("offer_id=%d amount=%d discount=%d", offerID, orderAmount, discount))

	return models.DiscountResult{
		OfferID:     offer.ID,
		Code:        offer.Code,
		OrderAmount: orderAmount,
		Discount:    discount,
		FinalAmount: orderAmount - discount,
	}, nil
}

// PopupOffer returns the live popup promotion, if any, keyed to the caller's
// session. The session id itself is minted by the handler layer.
func (s OffersService) PopupOffer(ctx context.Context, userID, sessionID string) (models.PopupOffer, error) {
	utils.LogEventCtx(ctx, "offers", "popup", "user_id="+userID+" session_id="+sessionID)

	offer, err := s.Repo.ActivePopup(ctx, s.now())
	if err != nil {
		return models.PopupOffer{}, err
	}
	return models.PopupOffer{SessionID: sessionID, Offer: offer}, nil
}

func computeDiscount(o models.Offer, amount int64, now time.Time) (int64, error) {
	if !o.Active || now.Before(o.StartsAt) || !now.Before(o.EndsAt) {
		return 0, domain.ValidationError{Field: "offerId", Msg: "offer is not active"}
	}
	if amount < o.MinOrderAmount {
		return 0, domain.ValidationError{Field: "orderAmount", Msg: "below offer minimum"}
	}

	var discount int64
	switch o.DiscountType {
	case models.DiscountPercent:
		discount = amount * o.DiscountValue / 100
	case models.DiscountFixed:
		discount = o.DiscountValue
	default:
		return 0, domain.InternalError{Msg: "unknown discount type", Err: fmt.Errorf("discount type %q", o.DiscountType)}
	}
	if discount > amount {
		discount = amount
	}
	return discount, nil
}
