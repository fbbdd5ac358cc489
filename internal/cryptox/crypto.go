// Package cryptox wraps password hashing for stored credentials.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for new hashes.
var Cost = bcrypt.DefaultCost

// dummyHash is compared against when a username does not exist, so a lookup
// miss costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("folio-dummy-password"), bcrypt.DefaultCost)

// ErrEmptyPassword is returned by HashPassword for empty input.
var ErrEmptyPassword = errors.New("empty password")

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches hash. The comparison is
// constant-time in the password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnCompare performs a comparison whose result is discarded.
func BurnCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Wipe zeroes b, e.g. a password read from the terminal once it has been
// copied into a request.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
