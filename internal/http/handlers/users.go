package handlers

import (
	"net/http"

	"restaurant/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	Svc UserService
}

// GET /api/user/sync
// Mirrors the identity provider's claims into the local profile row and
// returns the normalized fields.
func (h UsersHandler) Sync(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.Svc.SyncFromIdentity(c.Request.Context(), ident)
	if err != nil {
		RespondDomainError(c, "sync user", err)
		return
	}
	respondData(c, http.StatusOK, profile)
}
