package auth

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"scopelock-api/internal/middleware"
)

// blacklistKeyPrefix is the Redis key prefix under which revoked tokens are
// stored by the logout flow (keyed by jti, expiring with the token)
const blacklistKeyPrefix = "token:blacklist:"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// Validator validates JWT bearer tokens locally and checks the Redis token
// blacklist so logged-out sessions are rejected. It implements
// middleware.TokenValidator.
type Validator struct {
	secret []byte
	redis  *redis.Client
	logger *zap.Logger
}

// NewValidator creates a token validator. The Redis client may be nil, in
// which case the blacklist check is skipped (signature is still enforced).
func NewValidator(secret string, redisClient *redis.Client, logger *zap.Logger) *Validator {
	return &Validator{
		secret: []byte(secret),
		redis:  redisClient,
		logger: logger,
	}
}

// ValidateToken parses and validates the token signature, then consults the
// blacklist. Redis failures fail open: the signature check already passed and
// auth must not depend on cache availability.
func (v *Validator) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := middleware.UserIDFromClaims(claims)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	if v.redis != nil {
		if jti, ok := claims["jti"].(string); ok && jti != "" {
			exists, err := v.redis.Exists(ctx, blacklistKeyPrefix+jti).Result()
			if err != nil {
				v.logger.Warn("Blacklist lookup failed, allowing token",
					zap.Error(err),
				)
			} else if exists > 0 {
				return uuid.Nil, ErrTokenRevoked
			}
		}
	}

	return userID, nil
}
