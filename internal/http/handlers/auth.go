package handlers

import (
	"context"
	"net/http"

	"restaurant/internal/domain/models"
	"restaurant/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (models.Profile, error)
	Login(ctx context.Context, email, password string) (string, models.Profile, error)
}

type AuthHandler struct {
	Svc AuthService
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	profile, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, "register", err)
		return
	}
	respondData(c, http.StatusCreated, profile)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	token, profile, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, "login", err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"token": token, "user": profile})
}
