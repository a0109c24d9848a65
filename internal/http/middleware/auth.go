package middleware

import (
	"net/http"
	"strings"

	"restaurant/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "auth_identity"

// ResolveIdentity inspects the request's bearer credential and returns the
// identity it proves. A missing or malformed credential is a normal outcome,
// reported as ok=false, never as an error.
func ResolveIdentity(r *http.Request, secret []byte) (domain.Identity, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return domain.Identity{}, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return domain.Identity{}, false
	}

	token, err := jwt.Parse(strings.TrimSpace(parts[1]), func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return domain.Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, false
	}
	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return domain.Identity{}, false
	}
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return domain.Identity{
		UserID: sub,
		Role:   domain.Role(role),
		Email:  email,
		Name:   name,
	}, true
}

// RequireAuth rejects unauthenticated requests with 401 before the handler
// runs and stores the resolved identity in the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := ResolveIdentity(c.Request, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// OptionalAuth resolves the identity when a credential is present but never
// rejects; handlers branch on GetIdentity themselves.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident, ok := ResolveIdentity(c.Request, secret); ok {
			c.Set(identityKey, ident)
		}
		c.Next()
	}
}

// RequireRoles layers role-based access on top of RequireAuth. A missing
// identity is 401; a resolved identity with the wrong role is 403.
func RequireRoles(allowedRoles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if _, ok := allowed[ident.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// GetIdentity extracts the resolved identity from the gin context.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	if c == nil {
		return domain.Identity{}, false
	}
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	ident, ok := v.(domain.Identity)
	return ident, ok
}
