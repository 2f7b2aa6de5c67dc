package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"hypnoraffle/config"
	"hypnoraffle/database"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	AuthCookieName = "hypnoraffle_auth"
	AuthTokenTTL   = 24 * time.Hour

	revokedTokenPrefix = "auth:revoked:"
	tokenIssuer        = "hypnoraffle"
)

// GateClaims are the claims of a password gate token
type GateClaims struct {
	jwt.RegisteredClaims
}

// HashPassword returns the hex SHA-256 digest used by SITE_PASSWORD_HASH
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// PasswordGateEnabled reports whether a site password hash is configured
func PasswordGateEnabled() bool {
	return config.SitePasswordHash != ""
}

// Unlock checks the site password and issues a gate token
func Unlock(password string) (string, time.Time, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return "", time.Time{}, ErrPasswordRequired
	}

	hash := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(config.SitePasswordHash)) != 1 {
		return "", time.Time{}, ErrIncorrectPassword
	}

	now := time.Now()
	expiresAt := now.Add(AuthTokenTTL)
	claims := GateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// ValidateToken parses a gate token and checks it has not been revoked
func ValidateToken(ctx context.Context, tokenString string) (*GateClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &GateClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if database.REDIS != nil && claims.ID != "" {
		n, err := database.REDIS.Exists(ctx, revokedTokenPrefix+claims.ID).Result()
		if err != nil {
			zap.L().Warn("failed to check token revocation", zap.Error(err))
		} else if n > 0 {
			return nil, ErrInvalidToken
		}
	}
	return claims, nil
}

// RevokeToken blacklists a token id until the token would have expired anyway
func RevokeToken(ctx context.Context, claims *GateClaims) error {
	if database.REDIS == nil || claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return database.REDIS.Set(ctx, revokedTokenPrefix+claims.ID, "1", ttl).Err()
}
