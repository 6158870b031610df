package model

import "time"

// User represents a registered customer of the storefront.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	FullName     string
	Email        string
	CreatedAt    time.Time
}

// BuyerName returns the name presented to the payment gateway.
// Falls back to login when the profile has no full name.
func (u *User) BuyerName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Login
}
