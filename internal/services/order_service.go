package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"
	"restaurant/internal/utils"
)

type OrderService struct {
	Repo        repositories.OrderRepository
	MenuRepo    repositories.MenuRepository
	OfferRepo   repositories.OfferRepository
	InvoiceRepo repositories.InvoiceRepository
	UserRepo    repositories.UserRepository
	Now         func() time.Time
}

func (s OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

type CreateOrderItem struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

type CreateOrderInput struct {
	Items   []CreateOrderItem `json:"items"`
	OfferID *int64            `json:"offerId,omitempty"`
}

// Create prices the order server-side from current menu data, applies the
// optional offer, and persists order plus items atomically.
func (s OrderService) Create(ctx context.Context, userID string, in CreateOrderInput) (models.Order, error) {
	var out models.Order
	if len(in.Items) == 0 {
		return out, domain.ValidationError{Field: "items", Msg: "at least one item is required"}
	}

	ids := make([]int64, 0, len(in.Items))
	for _, item := range in.Items {
		if item.MenuItemID <= 0 {
			return out, domain.ValidationError{Field: "items.menuItemId", Msg: "must be a positive integer"}
		}
		if item.Quantity <= 0 {
			return out, domain.ValidationError{Field: "items.quantity", Msg: "must be greater than zero"}
		}
		ids = append(ids, item.MenuItemID)
	}

	menu, err := s.MenuRepo.GetItemsByIDs(ctx, ids)
	if err != nil {
		return out, err
	}

	var subtotal int64
	orderItems := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		mi, ok := menu[item.MenuItemID]
		if !ok || !mi.Active {
			return out, domain.ValidationError{
				Field: "items.menuItemId",
				Msg:   "menu item " + strconv.FormatInt(item.MenuItemID, 10) + " is unavailable",
			}
		}
		subtotal += mi.Price * int64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			UnitPrice:  mi.Price,
			Quantity:   item.Quantity,
		})
	}

	var discount int64
	if in.OfferID != nil {
		offer, err := s.OfferRepo.GetByID(ctx, *in.OfferID)
		if err != nil {
			return out, err
		}
		if discount, err = computeDiscount(offer, subtotal, s.now()); err != nil {
			return out, err
		}
	}

	order := models.Order{
		UserID:   userID,
		Status:   models.OrderPending,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
		OfferID:  in.OfferID,
		Items:    orderItems,
	}
	if err := s.Repo.Create(ctx, &order); err != nil {
		return out, err
	}

	utils.LogEventCtx(ctx, "orders", "create",
		fmt.Sprintf("order_id=%d user_id=%s total=%d", order.ID, userID, order.Total))
	return order, nil
}

func (s OrderService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get enforces ownership: customers may only read their own orders.
func (s OrderService) Get(ctx context.Context, id int64, requester domain.Identity) (models.Order, error) {
	if id <= 0 {
		return models.Order{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	order, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if order.UserID != requester.UserID && !requester.IsAdmin() {
		return models.Order{}, domain.ForbiddenError{Msg: "order belongs to another customer"}
	}
	return order, nil
}

func (s OrderService) ListAll(ctx context.Context, status string) ([]models.Order, error) {
	if status != "" && !validStatus(status) {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown order status"}
	}
	return s.Repo.ListAll(ctx, status)
}

var statusTransitions = map[string][]string{
	models.OrderPending:   {models.OrderConfirmed, models.OrderCancelled},
	models.OrderConfirmed: {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing: {models.OrderReady},
	models.OrderReady:     {models.OrderCompleted},
}

func validStatus(s string) bool {
	switch s {
	case models.OrderPending, models.OrderConfirmed, models.OrderPreparing,
		models.OrderReady, models.OrderCompleted, models.OrderCancelled:
		return true
	}
	return false
}

// UpdateStatus applies the kitchen workflow transition rules and issues an
// invoice when an order completes.
func (s OrderService) UpdateStatus(ctx context.Context, id int64, next string) (models.Order, error) {
	var out models.Order
	if !validStatus(next) {
		return out, domain.ValidationError{Field: "status", Msg: "unknown order status"}
	}

	order, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return out, err
	}

	allowed := false
	for _, candidate := range statusTransitions[order.Status] {
		if candidate == next {
			allowed = true
			break
		}
	}
	if !allowed {
		return out, domain.ConflictError{
			Resource: "order",
			Msg:      fmt.Sprintf("cannot move from %s to %s", order.Status, next),
		}
	}

	if err := s.Repo.UpdateStatus(ctx, id, next); err != nil {
		return out, err
	}
	order.Status = next

	if next == models.OrderCompleted {
		if err := s.issueInvoice(ctx, order); err != nil {
			// the status change stands; invoice failure is reported upstream
			return order, domain.InternalError{Msg: "invoice creation failed", Err: err}
		}
	}

	utils.LogEventCtx(ctx, "orders", "update_status",
		fmt.Sprintf("order_id=%d status=%s", id, next))
	return order, nil
}

func (s OrderService) issueInvoice(ctx context.Context, order models.Order) error {
	customer := ""
	if u, err := s.UserRepo.GetByID(ctx, order.UserID); err == nil {
		customer = u.Name
	}

	now := s.now()
	inv := models.Invoice{
		OrderID:      order.ID,
		Number:       fmt.Sprintf("INV-%s-%d", now.Format("20060102"), order.ID),
		CustomerName: customer,
		Amount:       order.Total,
		Paid:         false,
		IssuedAt:     now,
	}
	return s.InvoiceRepo.Insert(ctx, &inv)
}
