package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/designerprogramming-cyber/Designs4U/internal/modules/users"
)

// SessionCfg holds the JWT settings for stateless sessions. There is
// no session table; the signed token is the whole session.
type SessionCfg struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

const (
	// HeaderClientID carries the anonymous client id that keys the
	// navigation session. Minted server-side on first contact and
	// echoed back so the SPA can stick to it.
	HeaderClientID = "X-Client-ID"

	ctxKeyClientID = "client_id"
	ctxKeyUser     = "session_user"
)

// ClientSession assigns every caller a stable client id, logged-in or
// not, so pre-auth screens (register, forgot password) have state too.
func ClientSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(HeaderClientID)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Set(ctxKeyClientID, cid)
		c.Writer.Header().Set(HeaderClientID, cid)
		c.Next()
	}
}

func ClientID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyClientID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// IssueToken signs a session token for the user.
func IssueToken(cfg SessionCfg, u users.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   cfg.Issuer,
		"aud":   cfg.Audience,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(cfg.TTL).Unix(),
		"sub":   u.ID,
		"email": u.Email,
		"role":  string(u.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.Secret)
}

// ContextUser is the authenticated user resolved from the bearer token.
type ContextUser struct {
	ID    string
	Email string
	Role  users.Role
}

// Session parses an optional bearer token into the request context.
// Invalid tokens are treated as anonymous; the auth guards decide
// whether that is acceptable.
func Session(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}
		if claims["iss"] != cfg.Issuer || claims["aud"] != cfg.Audience {
			c.Next()
			return
		}

		u := ContextUser{}
		if s, ok := claims["sub"].(string); ok {
			u.ID = s
		}
		if s, ok := claims["email"].(string); ok {
			u.Email = s
		}
		if s, ok := claims["role"].(string); ok {
			u.Role = users.Role(s)
		}
		if u.ID != "" {
			c.Set(ctxKeyUser, u)
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the gin context.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return ContextUser{}, false
	}
	u, ok := v.(ContextUser)
	return u, ok
}
