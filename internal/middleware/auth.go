package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stavquote/internal/auth"
)

// AuthMiddleware rejects requests without a valid Bearer token. Our own
// contractor tokens are tried first; Supabase-issued tokens are accepted as
// a fallback so clients authenticated directly against Supabase can call
// the API too.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token not provided",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token format. Use: Bearer <token>",
			})
			c.Abort()
			return
		}

		tokenString := tokenParts[1]

		if claims, err := auth.ParseContractorJWT(tokenString); err == nil {
			setUser(c, &auth.UserContext{
				UserID: claims.ContractorID.String(),
				Email:  claims.Email,
				Name:   claims.Name,
				Role:   claims.Role,
			})
			c.Next()
			return
		}

		supaClaims, err := auth.ParseSupabaseJWT(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("Invalid JWT token")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setUser(c, &auth.UserContext{
			UserID:    supaClaims.Subject,
			Email:     supaClaims.Email,
			Role:      supaClaims.Role,
			SessionID: supaClaims.SessionID,
		})
		c.Next()
	}
}

// setUser attaches the authenticated user to both the Gin context and the
// request context.
func setUser(c *gin.Context, user *auth.UserContext) {
	contractorID, err := uuid.Parse(user.UserID)
	if err != nil {
		contractorID = uuid.Nil
	}
	c.Set("contractor_id", contractorID)
	c.Set("contractor_email", user.Email)
	c.Set("contractor_name", user.Name)
	c.Request = c.Request.WithContext(auth.WithUserContext(c.Request.Context(), user))
}

// GetContractorFromContext reads the authenticated contractor off the Gin
// context.
func GetContractorFromContext(c *gin.Context) (uuid.UUID, string, string, error) {
	contractorID, exists := c.Get("contractor_id")
	if !exists {
		return uuid.Nil, "", "", fmt.Errorf("contractor_id not found in context")
	}

	email, exists := c.Get("contractor_email")
	if !exists {
		return uuid.Nil, "", "", fmt.Errorf("contractor_email not found in context")
	}

	name, exists := c.Get("contractor_name")
	if !exists {
		return uuid.Nil, "", "", fmt.Errorf("contractor_name not found in context")
	}

	contractorUUID, ok := contractorID.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", "", fmt.Errorf("contractor_id has an invalid type")
	}

	contractorEmail, ok := email.(string)
	if !ok {
		return uuid.Nil, "", "", fmt.Errorf("contractor_email has an invalid type")
	}

	contractorName, ok := name.(string)
	if !ok {
		return uuid.Nil, "", "", fmt.Errorf("contractor_name has an invalid type")
	}

	return contractorUUID, contractorEmail, contractorName, nil
}

// CORSMiddleware allows cross-origin requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// LoggerMiddleware emits one structured log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logrus.WithFields(logrus.Fields{
			"status_code": param.StatusCode,
			"latency":     param.Latency,
			"client_ip":   param.ClientIP,
			"method":      param.Method,
			"path":        param.Path,
			"user_agent":  param.Request.UserAgent(),
			"error":       param.ErrorMessage,
		}).Info("HTTP Request")
		return ""
	})
}

// RecoveryMiddleware turns panics into 500 responses.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"panic":  recovered,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Recovered from panic")

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	})
}
