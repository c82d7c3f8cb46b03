package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/designerprogramming-cyber/Designs4U/internal/http/middleware"
	"github.com/designerprogramming-cyber/Designs4U/internal/http/validation"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/flow"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/orders"
	"github.com/designerprogramming-cyber/Designs4U/internal/modules/users"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/apperr"
	"github.com/designerprogramming-cyber/Designs4U/internal/shared/phone"
)

// AuthHandler drives the sign-in/sign-up screens: credentials go to
// the users service, navigation goes to the per-client flow session,
// and a successful login mints a bearer token.
type AuthHandler struct {
	users  *users.Service
	orders *orders.Service
	flows  *flow.Store
	jwt    middleware.SessionCfg
	log    *slog.Logger
}

func NewAuthHandler(us *users.Service, os *orders.Service, flows *flow.Store, jwt middleware.SessionCfg, log *slog.Logger) *AuthHandler {
	return &AuthHandler{users: us, orders: os, flows: flows, jwt: jwt, log: log}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please fill in all fields.", validation.FromBindError(err, &req)))
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	token, err := middleware.IssueToken(h.jwt, u)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	sess.LoginSucceeded(u)

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"user":   u,
		"screen": sess.Screen(),
	})
}

type registerRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	DialCode        string `json:"dial_code" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,min=1"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please fill in all fields.", validation.FromBindError(err, &req)))
		return
	}

	u, err := h.users.Register(c.Request.Context(), users.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           phone.Combine(req.DialCode, req.Phone),
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	sess.RegisterSucceeded(u)

	c.JSON(http.StatusCreated, gin.H{
		"user":   u,
		"screen": sess.Screen(),
	})
}

type verifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// Verify confirms the 6-digit email code and, on success, signs the
// freshly registered user in.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please enter the code.", validation.FromBindError(err, &req)))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	u, ok := sess.User()
	if !ok {
		middleware.Fail(c, apperr.UnauthorizedErr("Sign in to continue."))
		return
	}

	if err := h.users.VerifyEmail(c.Request.Context(), u.Email, req.Code); err != nil {
		middleware.Fail(c, err)
		return
	}
	if err := sess.VerifySucceeded(); err != nil {
		middleware.Fail(c, err)
		return
	}
	token, err := middleware.IssueToken(h.jwt, u)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"user":   u,
		"screen": sess.Screen(),
	})
}

type forgotRequest struct {
	DialCode string `json:"dial_code" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// Forgot "sends" the reset code. The demo has no SMS backend, so the
// code comes back in the response for the UI to display.
func (h *AuthHandler) Forgot(c *gin.Context) {
	var req forgotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please enter your phone number.", validation.FromBindError(err, &req)))
		return
	}

	full := phone.Combine(req.DialCode, req.Phone)
	code, err := h.users.StartPasswordReset(c.Request.Context(), full)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	sess.ResetCodeSent(full)

	c.JSON(http.StatusOK, gin.H{
		"demo_code": code,
		"screen":    sess.Screen(),
	})
}

type resetRequest struct {
	Code            string `json:"code" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

func (h *AuthHandler) Reset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please fill in all fields.", validation.FromBindError(err, &req)))
		return
	}

	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	err := h.users.ResetPassword(c.Request.Context(), users.ResetPasswordInput{
		Phone:           sess.ResetPhone(),
		Code:            req.Code,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	sess.ResetSucceeded("Password updated. Sign in with your new password.")

	c.JSON(http.StatusOK, gin.H{
		"notice": "Password updated. Sign in with your new password.",
		"screen": sess.Screen(),
	})
}

// Logout tears the session down: any in-flight order is discarded so
// its approval timer cannot fire later.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := h.flows.GetOrCreate(middleware.ClientID(c))
	if o, err := sess.CurrentOrder(); err == nil {
		h.orders.Discard(c.Request.Context(), o.ID)
	}
	sess.Logout()

	c.JSON(http.StatusOK, gin.H{"screen": sess.Screen()})
}
