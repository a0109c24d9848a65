package handlers

import (
	"net/http"
	"time"

	"restaurant/internal/http/middleware"
	"restaurant/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProtectedHandler echoes the resolved identity; it exists so frontends can
// probe their session state.
type ProtectedHandler struct {
	Now func() time.Time
}

func (h ProtectedHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return utils.NowUTC()
}

// GET /api/protected
func (h ProtectedHandler) Get(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	respondData(c, http.StatusOK, gin.H{"identity": ident})
}

// POST /api/protected
func (h ProtectedHandler) Post(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body any
	if c.Request.Body != nil {
		// best effort: an empty or malformed body still echoes as null
		_ = c.ShouldBindJSON(&body)
	}

	respondData(c, http.StatusOK, gin.H{
		"identity":  ident,
		"body":      body,
		"timestamp": h.now().Format(time.RFC3339),
	})
}
