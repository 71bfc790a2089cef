package middleware

import (
	"log/slog"
	"net/http"

	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/cookie"
	"facility-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware pins every request to a session via a signed cookie.
// There is no login: a request without a valid session cookie gets a fresh
// session minted transparently. The booking store is keyed by this ID.
type SessionMiddleware struct {
	tokens *jwt.Service
	cfg    config.SessionConfig
}

func NewSessionMiddleware(tokens *jwt.Service, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		tokens: tokens,
		cfg:    cfg.Session,
	}
}

func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := cookie.GetSessionToken(c, m.cfg); token != "" {
			sessionID, err := m.tokens.ValidateSessionToken(token)
			if err == nil {
				c.Set(ctxSessionIDKey, sessionID)
				c.Next()
				return
			}
			slog.Debug("session token rejected, minting a new session", "error", err.Error())
		}

		sessionID := uuid.New()
		token, err := m.tokens.IssueSessionToken(sessionID)
		if err != nil {
			slog.Error("failed to issue session token", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		cookie.SetSessionCookie(c, m.cfg, token, m.tokens.TokenDuration())
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

// DropSessionCookie expires the session cookie so the next request starts a
// fresh session. The clear operation discards the whole session, identity
// included; orphaned store entries age out via their TTL.
func (m *SessionMiddleware) DropSessionCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie.ClearSessionCookie(c, m.cfg)
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	sessionID, ok := value.(uuid.UUID)
	return sessionID, ok
}
