// Package auth validates access tokens issued by the hosted auth provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/config"
	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// ErrInvalidToken is returned for any token that does not pass validation.
// It matches domain.ErrUnauthorized.
var ErrInvalidToken = fmt.Errorf("invalid access token: %w", domain.ErrUnauthorized)

// TokenValidator checks HS256 access tokens whose subject is the user id.
type TokenValidator struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewTokenValidator creates a validator from the auth configuration.
func NewTokenValidator(cfg config.AuthConfig) *TokenValidator {
	return &TokenValidator{
		secret:    []byte(cfg.JWTSecret),
		issuer:    cfg.JWTIssuer,
		accessTTL: cfg.AccessTokenTTL,
		now:       time.Now,
	}
}

// ValidateToken parses token and returns the user it was issued for.
func (v *TokenValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return userID, nil
}

// Sign issues an access token for userID. The API never issues tokens itself;
// this exists for local development and tests.
func (v *TokenValidator) Sign(userID uuid.UUID) (string, error) {
	now := v.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(v.accessTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
