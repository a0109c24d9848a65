package models

import "time"

const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Offer is a promotion that can be applied to an order amount. DiscountValue is
// a percentage for percent offers and integer cents for fixed offers.
type Offer struct {
	ID             int64     `json:"id"`
	Code           string    `json:"code"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	DiscountType   string    `json:"discountType"`
	DiscountValue  int64     `json:"discountValue"`
	MinOrderAmount int64     `json:"minOrderAmount"`
	Popup          bool      `json:"popup"`
	Active         bool      `json:"active"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
}

// DiscountResult is returned unchanged to the caller of offers/apply.
type DiscountResult struct {
	OfferID     int64  `json:"offerId"`
	Code        string `json:"code"`
	OrderAmount int64  `json:"orderAmount"`
	Discount    int64  `json:"discount"`
	FinalAmount int64  `json:"finalAmount"`
}

// PopupOffer pairs the promoted offer with the session correlation key the
// anonymous caller should keep for the rest of their visit.
type PopupOffer struct {
	SessionID string `json:"sessionId"`
	Offer     *Offer `json:"offer"`
}
