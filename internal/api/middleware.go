package api

import (
	"bandisch/gym-tracker/internal/metrics"
	"bandisch/gym-tracker/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Constants for context keys
const (
	ContextGymGoerIDKey    = "gymGoerID"
	ContextGymGoerEmailKey = "gymGoerEmail"
	ContextRequestIDKey    = "requestID"
	ContextLoggerKey       = "logger"

	HeaderXRequestID = "X-Request-Id"
	// AuthCookieName is the cookie the web client keeps its session in.
	AuthCookieName = "gymGoer"
)

// authCookie is the JSON payload of the gymGoer cookie.
type authCookie struct {
	Email    string `json:"email"`
	JWTToken string `json:"jwt_token"`
}

// AuthMiddleware creates a Gin middleware for JWT authentication.
// The token is read from the Authorization header, falling back to the gymGoer cookie.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := tokenFromRequest(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		identity, err := authService.ParseToken(tokenString)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(ContextGymGoerIDKey, identity.ID)
		c.Set(ContextGymGoerEmailKey, identity.Email)
		c.Set(ContextLoggerKey, requestLogger(c).WithField("gymGoerId", identity.ID))

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	raw, err := c.Cookie(AuthCookieName)
	if err != nil || raw == "" {
		return "", false
	}
	var cookie authCookie
	if err := json.Unmarshal([]byte(raw), &cookie); err != nil || cookie.JWTToken == "" {
		return "", false
	}
	return cookie.JWTToken, true
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get the gym goer ID from context (used by handlers)
func getGymGoerIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextGymGoerIDKey)
	if !exists {
		return "", errors.New("gym goer ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid gym goer ID type in context")
	}
	return idStr, nil
}

// RequestID takes the request id from the X-Request-Id header or generates one,
// and stores a logger tagged with it on the context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextRequestIDKey, requestID)
		c.Set(ContextLoggerKey, log.WithField("requestId", requestID))
		c.Header(HeaderXRequestID, requestID)

		c.Next()
	}
}

// requestLogger returns the request scoped logger, or the standard one outside a request.
func requestLogger(c *gin.Context) *log.Entry {
	if raw, ok := c.Get(ContextLoggerKey); ok {
		if entry, ok := raw.(*log.Entry); ok {
			return entry
		}
	}
	return log.NewEntry(log.StandardLogger())
}

func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()

		entry := requestLogger(c).WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(begin).String(),
			"ua":       c.Request.UserAgent(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Trace("request served")
	}
}

func RequestMetrics(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		metricsManager.GaugeRequests.Inc()
		defer func(begin time.Time) {
			metricsManager.GaugeRequests.Dec()
			metricsManager.HistRequestDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())

		c.Next()

		metricsManager.CounterRequests.WithLabelValues(
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

func PanicRecovery(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestLogger(c).Errorf("http: panic serving %s: %v\n%s", c.Request.URL.Path, r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				abortWithError(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}()

		c.Next()
	}
}
