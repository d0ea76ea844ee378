package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yash5749/ONI-LIBRARY/internal/shared/role"
)

const (
	// ContextUserID is the gin context key for the authenticated user's ID.
	ContextUserID = "userID"
	// ContextUserRole is the gin context key for the authenticated user's role.
	ContextUserRole = "userRole"
)

// AuthRequired returns a Gin middleware that validates JWT access tokens
// and restricts access to authenticated users only. On success the user's
// ID and role are stored in the request context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 2. Parse and verify JWT signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			// Validation error or invalid token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Extract claims (payload)
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ContextUserID, uint(sub))
		if r, ok := claims["role"].(string); ok {
			c.Set(ContextUserRole, role.Role(r))
		}

		// 4. Pass control to the next handler
		c.Next()
	}
}

// AdminRequired returns a Gin middleware that rejects any actor whose role
// does not authorize admin operations. It must run after AuthRequired.
// The check fails closed: a missing or unknown role claim is forbidden.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, _ := c.Value(ContextUserRole).(role.Role)
		if !role.Authorize(actor, role.Admin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access only"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the request context.
// The second return value is false when AuthRequired did not run.
func UserID(c *gin.Context) (uint, bool) {
	id, ok := c.Value(ContextUserID).(uint)
	return id, ok
}
