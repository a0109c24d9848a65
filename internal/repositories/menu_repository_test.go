package repositories

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func categoryRows() *sqlmock.Rows {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "name", "description", "display_order", "active", "created_at"}).
		AddRow(1, "Starters", "", 1, true, now).
		AddRow(2, "Mains", "", 2, true, now)
}

func TestListCategories_AllRowsWithoutFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM menu_categories ORDER BY`).WillReturnRows(categoryRows())

	repo := MenuRepository{DB: db}
	cats, err := repo.ListCategories(context.Background(), false)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListCategories_ActiveOnlyAddsFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM menu_categories WHERE active = 1`).WillReturnRows(categoryRows())

	repo := MenuRepository{DB: db}
	if _, err := repo.ListCategories(context.Background(), true); err != nil {
		t.Fatalf("list error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetItemByID_MissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`FROM menu_items`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "category_id", "name", "description", "price", "image_url", "active", "created_at", "updated_at",
		}))

	repo := MenuRepository{DB: db}
	_, err = repo.GetItemByID(context.Background(), 404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSearchItems_WrapsTermInWildcards(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`name LIKE \? OR description LIKE \?`).
		WithArgs("%pizza%", "%pizza%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "category_id", "name", "description", "price", "image_url", "active", "created_at", "updated_at",
		}).AddRow(1, 2, "Pizza Margherita", "", 1200, "", true, now, now))

	repo := MenuRepository{DB: db}
	items, err := repo.SearchItems(context.Background(), "  pizza  ")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Pizza Margherita" {
		t.Fatalf("unexpected result: %+v", items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetItemsByIDs_EmptyInputSkipsQuery(t *testing.T) {
	repo := MenuRepository{}
	out, err := repo.GetItemsByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty map, got %v", out)
	}
}
