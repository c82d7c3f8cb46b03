package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/http/validation"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/flow"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/phone"
	"github.com/designerprogramming-cyber/Designs4U/pkg/view"
)

// SessionHandler exposes the navigation machine: the current snapshot
// plus the free (no-guard) screen jumps between the auth pages.
type SessionHandler struct {
	flows *flow.Store
}

func NewSessionHandler(flows *flow.Store) *SessionHandler {
	return &SessionHandler{flows: flows}
}

// Snapshot returns everything the SPA needs to render the current
// screen in one call.
func (h *SessionHandler) Snapshot(c *gin.Context) {
	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	snap := sess.Snapshot()

	payload := gin.H{
		"screen": snap.Screen,
	}
	if snap.User != nil {
		payload["user"] = snap.User
	}
	if snap.SelectedProduct != nil {
		payload["selected_product"] = view.ProductDetail(*snap.SelectedProduct)
	}
	if snap.SelectedVariant != nil {
		v := *snap.SelectedVariant
		payload["selected_variant"] = gin.H{
			"id":    v.ID,
			"name":  v.Name,
			"price": view.MoneyFromCents(v.PriceCents, "USD"),
		}
	}
	if snap.CurrentOrder != nil {
		payload["current_order"] = view.OrderView(*snap.CurrentOrder)
	}
	if snap.ResetPhone != "" {
		payload["reset_phone"] = snap.ResetPhone
	}
	if snap.LoginNotice != "" {
		payload["login_notice"] = snap.LoginNotice
	}
	c.JSON(http.StatusOK, payload)
}

type gotoRequest struct {
	Screen string `json:"screen" binding:"required,oneof=login register forgot_password"`
}

// GoTo jumps between the pre-auth screens. Everything past login has
// its own guarded transition and is not reachable here.
func (h *SessionHandler) GoTo(c *gin.Context) {
	var req gotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Unknown screen.", validation.FromBindError(err, &req)))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	switch req.Screen {
	case "login":
		sess.GoToLogin()
	case "register":
		sess.GoToRegister()
	case "forgot_password":
		sess.GoToForgotPassword()
	}
	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}

// Countries serves the dial-code picker, filtered by ?q=.
func (h *SessionHandler) Countries(c *gin.Context) {
	matches := phone.Search(c.Query("q"))

	out := make([]gin.H, 0, len(matches))
	for _, country := range matches {
		out = append(out, gin.H{
			"name":      country.Name,
			"dial_code": country.DialCode,
			"code":      country.Code,
			"flag":      phone.FlagEmoji(country.Code),
		})
	}
	c.JSON(http.StatusOK, gin.H{"countries": out})
}
