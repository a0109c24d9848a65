package services

import (
	"context"
	"strings"
	"time"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"
	"restaurant/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService stands in for the external identity provider: it keeps local
// accounts and issues the same bearer tokens the auth gate verifies.
type AuthService struct {
	Users    repositories.UserRepository
	Secret   []byte
	TokenTTL time.Duration
	NewID    func() string
	Now      func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s AuthService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (s AuthService) Register(ctx context.Context, in RegisterInput) (models.Profile, error) {
	var out models.Profile

	email := utils.NormalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return out, domain.ValidationError{Field: "email", Msg: "a valid address is required"}
	}
	if len(in.Password) < 8 {
		return out, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return out, domain.ValidationError{Field: "name", Msg: "must not be empty"}
	}

	if n, err := s.Users.CountByEmail(ctx, email); err != nil {
		return out, err
	} else if n > 0 {
		return out, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return out, err
	}

	u := models.User{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		Role:         string(domain.RoleCustomer),
		Status:       "active",
	}
	if err := s.Users.Insert(ctx, u); err != nil {
		return out, err
	}

	utils.LogEventCtx(ctx, "auth", "register", "user_id="+u.ID)
	return toProfile(u), nil
}

// Login verifies credentials and issues a signed token. Wrong email and wrong
// password are indistinguishable to the caller.
func (s AuthService) Login(ctx context.Context, email, password string) (string, models.Profile, error) {
	email = utils.NormalizeEmail(email)

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.Profile{}, domain.UnauthorizedError{Msg: "invalid email or password"}
		}
		return "", models.Profile{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.Profile{}, domain.UnauthorizedError{Msg: "invalid email or password"}
	}

	token, err := s.IssueToken(u)
	if err != nil {
		return "", models.Profile{}, err
	}

	utils.LogEventCtx(ctx, "auth", "login", "user_id="+u.ID)
	return token, toProfile(u), nil
}

func (s AuthService) IssueToken(u models.User) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID,
		"role":  u.Role,
		"email": u.Email,
		"name":  u.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl()).Unix(),
	})
	return token.SignedString(s.Secret)
}
