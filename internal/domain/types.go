package domain

import (
	"strings"
	"time"
)

// Role is the coarse access level carried by an authenticated identity.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity is the request-scoped result of credential resolution. UserID is an
// opaque identifier whose format is controlled by the identity provider.
type Identity struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// DateRange bounds a reporting window. From is inclusive, To is exclusive so a
// date-only upper bound covers the whole day it names.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

const layoutDate = "2006-01-02"

// ParseDateRange builds a range from two ISO strings (YYYY-MM-DD or RFC3339).
// Both empty yields nil: callers treat that as "no window". A single bound is a
// validation error, as is an inverted range.
func ParseDateRange(from, to string) (*DateRange, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, ValidationError{Field: "dateRange", Msg: "both from and to are required"}
	}

	fromT, _, err := parseISODate(from)
	if err != nil {
		return nil, ValidationError{Field: "from", Msg: "invalid date", Err: err}
	}
	toT, dateOnly, err := parseISODate(to)
	if err != nil {
		return nil, ValidationError{Field: "to", Msg: "invalid date", Err: err}
	}
	if dateOnly {
		toT = toT.Add(24 * time.Hour)
	}
	if toT.Before(fromT) {
		return nil, ValidationError{Field: "dateRange", Msg: "to precedes from"}
	}

	return &DateRange{From: fromT, To: toT}, nil
}

func parseISODate(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	t, err = time.ParseInLocation(layoutDate, s, time.UTC)
	return t, true, err
}
