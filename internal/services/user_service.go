package services

import (
	"context"
	"strings"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"
	"restaurant/internal/utils"
)

type UserService struct {
	Repo repositories.UserRepository
}

func (s UserService) Get(ctx context.Context, id string) (models.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Profile{}, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Profile{}, err
	}
	return toProfile(u), nil
}

// SyncFromIdentity upserts the local profile row from identity-provider claims
// and returns the normalized result. Role and credentials are never overwritten
// from claims of an existing row.
func (s UserService) SyncFromIdentity(ctx context.Context, ident domain.Identity) (models.Profile, error) {
	if strings.TrimSpace(ident.UserID) == "" {
		return models.Profile{}, domain.UnauthorizedError{Msg: "missing subject"}
	}

	email := utils.NormalizeEmail(ident.Email)
	name := strings.TrimSpace(ident.Name)
	if name == "" && email != "" {
		name = email[:strings.Index(email+"@", "@")]
	}
	if name == "" {
		name = "Guest"
	}

	role := string(ident.Role)
	if role == "" {
		role = string(domain.RoleCustomer)
	}

	err := s.Repo.Upsert(ctx, models.User{
		ID:     ident.UserID,
		Name:   name,
		Email:  email,
		Role:   role,
		Status: "active",
	})
	if err != nil {
		return models.Profile{}, err
	}

	utils.LogEventCtx(ctx, "users", "sync", "user_id="+ident.UserID)

	u, err := s.Repo.GetByID(ctx, ident.UserID)
	if err != nil {
		return models.Profile{}, err
	}
	return toProfile(u), nil
}

func toProfile(u models.User) models.Profile {
	return models.Profile{
		ID:     u.ID,
		Name:   u.Name,
		Email:  utils.NormalizeEmail(u.Email),
		Phone:  u.Phone,
		Role:   u.Role,
		Status: u.Status,
	}
}
