package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"eventflow/internal/logger"
	"eventflow/internal/metrics"
	"eventflow/internal/models"
)

// Session keys for the authenticated identity
const (
	SessionUserKey  = "user"
	SessionRoleKey  = "role"
	SessionEmailKey = "email"
)

const identityContextKey = "identity"

// SetIdentity stores the logged-in identity in the session
func SetIdentity(c *gin.Context, ident models.Identity) error {
	sess := sessions.Default(c)
	sess.Set(SessionUserKey, ident.Username)
	sess.Set(SessionRoleKey, string(ident.Role))
	sess.Set(SessionEmailKey, ident.Email)
	return sess.Save()
}

// ClearIdentity drops the session on logout
func ClearIdentity(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}

// IdentityFromSession reads the identity out of the session cookie, if any
func IdentityFromSession(c *gin.Context) (models.Identity, bool) {
	sess := sessions.Default(c)

	username, _ := sess.Get(SessionUserKey).(string)
	if username == "" {
		return models.Identity{}, false
	}

	role, _ := sess.Get(SessionRoleKey).(string)
	email, _ := sess.Get(SessionEmailKey).(string)

	return models.Identity{
		Username: username,
		Role:     models.Role(role),
		Email:    email,
	}, true
}

// Identity returns the identity placed on the context by RequireUser or
// RequireAdmin
func Identity(c *gin.Context) models.Identity {
	v, _ := c.Get(identityContextKey)
	ident, _ := v.(models.Identity)
	return ident
}

// RequireUser rejects requests without a logged-in session and hands the
// identity to downstream handlers explicitly via the request context.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFromSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		c.Set(identityContextKey, ident)
		c.Next()
	}
}

// RequireAdmin is RequireUser plus an admin-role check
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFromSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		if ident.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admins only"})
			return
		}

		c.Set(identityContextKey, ident)
		c.Next()
	}
}

// CORS middleware for browser clients
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// Logger middleware for structured request logging
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := logger.NewRequestID()
		c.Header("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)

		log := logger.WithRequestID(requestID)
		logFields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if c.Writer.Status() >= 400 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			log.Error("request completed with error", logFields...)
		} else {
			log.Info("request completed", logFields...)
		}
	}
}

// Metrics middleware records Prometheus request metrics per route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// Recovery middleware restores after panics with detailed logging
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	})
}
