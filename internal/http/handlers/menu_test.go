package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type menuStub struct {
	categories []models.MenuCategory
	item       models.MenuItem
	items      []models.MenuItem
	err        error

	listCalls      int
	searchCalls    int
	getCalls       int
	lastActiveOnly bool
}

func (s *menuStub) ListCategories(_ context.Context, activeOnly bool) ([]models.MenuCategory, error) {
	s.listCalls++
	s.lastActiveOnly = activeOnly
	return s.categories, s.err
}

func (s *menuStub) GetItem(_ context.Context, id int64) (models.MenuItem, error) {
	s.getCalls++
	return s.item, s.err
}

func (s *menuStub) Search(_ context.Context, term string) ([]models.MenuItem, error) {
	s.searchCalls++
	return s.items, s.err
}

func (s *menuStub) Statistics(_ context.Context) (models.MenuStatistics, error) {
	return models.MenuStatistics{}, s.err
}

func newMenuRouter(stub *menuStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := MenuHandler{Svc: stub}
	r := gin.New()
	r.GET("/api/menu/categories", h.Categories)
	r.GET("/api/menu/items/:id", h.ItemByID)
	r.GET("/api/menu/search", h.Search)
	return r
}

func TestMenuSearch_EmptyTermShortCircuits(t *testing.T) {
	stub := &menuStub{}
	r := newMenuRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu/search?q=", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Zero(t, stub.searchCalls, "facade must not be called for an empty term")
}

func TestMenuSearch_BlankTermShortCircuits(t *testing.T) {
	stub := &menuStub{}
	r := newMenuRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu/search?q=%20%20", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Zero(t, stub.searchCalls)
}

func TestMenuSearch_TermDelegates(t *testing.T) {
	stub := &menuStub{items: []models.MenuItem{{ID: 1, Name: "Margherita"}}}
	r := newMenuRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu/search?q=marg", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.searchCalls)
	assert.Contains(t, w.Body.String(), "Margherita")
}

func TestMenuCategories_ActiveOnlyCoercion(t *testing.T) {
	cases := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?activeOnly=true", true},
		{"?activeOnly=false", false},
		{"?activeOnly=TRUE", false},
		{"?activeOnly=1", false},
	}
	for _, tc := range cases {
		stub := &menuStub{categories: []models.MenuCategory{}}
		r := newMenuRouter(stub)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu/categories"+tc.query, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, stub.listCalls)
		assert.Equal(t, tc.want, stub.lastActiveOnly, "query %q", tc.query)
	}
}

func TestMenuItem_UnknownID404(t *testing.T) {
	stub := &menuStub{err: domain.NotFoundError{Resource: "menu item"}}
	r := newMenuRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu/items/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"menu item not found"}`, w.Body.String())
}

func TestMenuItem_MalformedID400(t *testing.T) {
	stub := &menuStub{}
	r := newMenuRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/menu/items/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.getCalls)
}
