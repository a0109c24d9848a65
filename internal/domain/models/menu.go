package models

import "time"

// MenuCategory groups items on the customer-facing menu.
type MenuCategory struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MenuItem prices are integer cents.
type MenuItem struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
