package handlers

import (
	"context"
	"net/http"
	"strings"

	"restaurant/internal/domain/models"
	"restaurant/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type OffersService interface {
	Apply(ctx context.Context, offerID, orderAmount int64) (models.DiscountResult, error)
	PopupOffer(ctx context.Context, userID, sessionID string) (models.PopupOffer, error)
}

// OffersHandler serves the public promotion endpoints. NewSessionID is
// injected so tests can pin the generated correlation key.
type OffersHandler struct {
	Svc          OffersService
	NewSessionID func() string
}

type applyOfferRequest struct {
	OfferID     *int64 `json:"offerId"`
	OrderAmount *int64 `json:"orderAmount"`
}

// POST /api/offers/apply
func (h OffersHandler) Apply(c *gin.Context) {
	var req applyOfferRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.OfferID == nil || req.OrderAmount == nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.Svc.Apply(c.Request.Context(), *req.OfferID, *req.OrderAmount)
	if err != nil {
		RespondDomainError(c, "apply offer", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/offers/popup
// Anonymous callers without a session key get a freshly generated one so the
// popup can still be correlated for the duration they hold it.
func (h OffersHandler) Popup(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		if ident, ok := middleware.GetIdentity(c); ok {
			userID = ident.UserID
		}
	}

	sessionID := strings.TrimSpace(c.Query("sessionId"))
	if sessionID == "" {
		sessionID = strings.TrimSpace(c.GetHeader("X-Session-ID"))
	}
	if sessionID == "" {
		sessionID = h.NewSessionID()
	}

	popup, err := h.Svc.PopupOffer(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondDomainError(c, "load popup offer", err)
		return
	}
	c.JSON(http.StatusOK, popup)
}
