package model

import "time"

// AdminUser is an account allowed to access the admin panel.
// PasswordHash is a bcrypt hash; the clear-text password is never stored.
type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
