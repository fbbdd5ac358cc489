// Package models defines the documents persisted by the folio server and
// the public views derived from them.
package models

import "time"

// User is an admin account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	UserName     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
