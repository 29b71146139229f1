package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenValidator validates a bearer token and resolves the user it belongs to
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error)
}

// AuthWithValidator returns a middleware that validates JWT tokens via the
// given validator. This ensures revoked (blacklisted) tokens are rejected.
func AuthWithValidator(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		userID, err := validator.ValidateToken(ctx, tokenString)
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		// Store user ID and JWT token in context for downstream use
		c.Set("user_id", userID)
		c.Set("jwtToken", tokenString)

		c.Next()
	}
}

// Auth returns a middleware that validates JWT tokens locally (no blacklist check)
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			unauthorized(c, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Invalid token claims")
			return
		}

		userID, err := UserIDFromClaims(claims)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		c.Set("user_id", userID)
		c.Set("jwtToken", tokenString)

		c.Next()
	}
}

// UserIDFromClaims extracts the user UUID from token claims, supporting the
// user_id, sub, and uid claim names
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	var userIDStr string

	if uid, ok := claims["user_id"].(string); ok {
		userIDStr = uid
	} else if sub, ok := claims["sub"].(string); ok {
		userIDStr = sub
	} else if uid, ok := claims["uid"].(string); ok {
		userIDStr = uid
	} else {
		return uuid.Nil, errMissingUserID
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errInvalidUserID
	}
	return userID, nil
}

var (
	errMissingUserID = &authError{"User ID not found in token"}
	errInvalidUserID = &authError{"Invalid user ID format"}
)

type authError struct {
	msg string
}

func (e *authError) Error() string { return e.msg }

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}
