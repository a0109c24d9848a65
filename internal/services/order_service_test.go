package services

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestOrderCreate_NoItemsRejected(t *testing.T) {
	svc := OrderService{}
	if _, err := svc.Create(context.Background(), "user_1", CreateOrderInput{}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderCreate_BadQuantityRejected(t *testing.T) {
	svc := OrderService{}
	in := CreateOrderInput{Items: []CreateOrderItem{{MenuItemID: 1, Quantity: 0}}}
	if _, err := svc.Create(context.Background(), "user_1", in); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func menuItemRows(items ...models.MenuItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "category_id", "name", "description", "price", "image_url", "active", "created_at", "updated_at",
	})
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, it := range items {
		rows.AddRow(it.ID, it.CategoryID, it.Name, it.Description, it.Price, it.ImageURL, it.Active, now, now)
	}
	return rows
}

func TestOrderCreate_PricesFromMenuAndPersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM menu_items").
		WillReturnRows(menuItemRows(
			models.MenuItem{ID: 1, CategoryID: 1, Name: "Margherita", Price: 1200, Active: true},
			models.MenuItem{ID: 2, CategoryID: 2, Name: "Cola", Price: 300, Active: true},
		))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(77, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	svc := OrderService{
		Repo:     repositories.OrderRepository{DB: db},
		MenuRepo: repositories.MenuRepository{DB: db},
	}
	order, err := svc.Create(context.Background(), "user_1", CreateOrderInput{
		Items: []CreateOrderItem{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if order.ID != 77 {
		t.Fatalf("order id = %d, want 77", order.ID)
	}
	if order.Subtotal != 2700 || order.Total != 2700 {
		t.Fatalf("totals = %d/%d, want 2700/2700", order.Subtotal, order.Total)
	}
	if order.Status != models.OrderPending {
		t.Fatalf("status = %q", order.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreate_InactiveItemRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM menu_items").
		WillReturnRows(menuItemRows(models.MenuItem{ID: 1, Name: "Old dish", Price: 900, Active: false}))

	svc := OrderService{
		Repo:     repositories.OrderRepository{DB: db},
		MenuRepo: repositories.MenuRepository{DB: db},
	}
	_, err = svc.Create(context.Background(), "user_1", CreateOrderInput{
		Items: []CreateOrderItem{{MenuItemID: 1, Quantity: 1}},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func orderRow(id int64, userID, status string, total int64) *sqlmock.Rows {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "user_id", "status", "subtotal", "discount", "total", "offer_id", "created_at", "updated_at",
	}).AddRow(id, userID, status, total, 0, total, nil, now, now)
}

func emptyItemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "name", "unit_price", "quantity"})
}

func TestOrderUpdateStatus_InvalidTransitionConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(5)).
		WillReturnRows(orderRow(5, "user_1", models.OrderCompleted, 2700))
	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WillReturnRows(emptyItemRows())

	svc := OrderService{Repo: repositories.OrderRepository{DB: db}}
	_, err = svc.UpdateStatus(context.Background(), 5, models.OrderPending)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderUpdateStatus_CompletionIssuesInvoice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(5)).
		WillReturnRows(orderRow(5, "user_1", models.OrderReady, 2700))
	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WillReturnRows(emptyItemRows())
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(models.OrderCompleted, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("user_1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "password_hash", "role", "status", "created_at", "updated_at",
		}).AddRow("user_1", "Ana", "ana@x.test", "", "", "customer", "active", now, now))
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnResult(sqlmock.NewResult(11, 1))

	svc := OrderService{
		Repo:        repositories.OrderRepository{DB: db},
		InvoiceRepo: repositories.InvoiceRepository{DB: db},
		UserRepo:    repositories.UserRepository{DB: db},
		Now:         func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
	order, err := svc.UpdateStatus(context.Background(), 5, models.OrderCompleted)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if order.Status != models.OrderCompleted {
		t.Fatalf("status = %q", order.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderGet_OtherCustomerForbidden(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(5)).
		WillReturnRows(orderRow(5, "owner", models.OrderPending, 2700))
	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WillReturnRows(emptyItemRows())

	svc := OrderService{Repo: repositories.OrderRepository{DB: db}}
	_, err = svc.Get(context.Background(), 5, domain.Identity{UserID: "intruder", Role: domain.RoleCustomer})
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestOrderGet_AdminMayReadAnyOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(5)).
		WillReturnRows(orderRow(5, "owner", models.OrderPending, 2700))
	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WillReturnRows(emptyItemRows())

	svc := OrderService{Repo: repositories.OrderRepository{DB: db}}
	order, err := svc.Get(context.Background(), 5, domain.Identity{UserID: "staff", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if order.UserID != "owner" {
		t.Fatalf("user id = %q", order.UserID)
	}
}
