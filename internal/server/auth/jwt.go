// Package auth issues and verifies the bearer tokens used on admin routes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the user id in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken validates signature, algorithm and expiry and returns
// the subject. Every failure wraps common.ErrUnauthorized together with the
// underlying jwt error (e.g. jwt.ErrTokenExpired).
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}

	if !token.Valid {
		return "", common.ErrUnauthorized
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: %w", common.ErrUnauthorized, errors.New("token has no subject"))
	}

	return claims.Subject, nil
}

// Issuer binds a secret and a validity window. It is safe for concurrent use.
type Issuer struct {
	secret   []byte
	validity time.Duration
}

func NewIssuer(secretKey string, validity time.Duration) *Issuer {
	return &Issuer{secret: []byte(secretKey), validity: validity}
}

func (i *Issuer) Issue(userID string) (string, error) {
	return GenerateToken(userID, i.secret, i.validity)
}

func (i *Issuer) Verify(token string) (string, error) {
	return GetUserIDFromToken(token, i.secret)
}
