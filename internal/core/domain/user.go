package domain

import "time"

// Supported gender values for a user profile.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

// Genders lists the accepted gender values.
var Genders = []string{GenderMale, GenderFemale, GenderOther}

// User represents an authenticated account. Password is nil for accounts
// created through Google sign-in that never set a local password.
type User struct {
	UserID                string     `json:"userId"`
	Email                 string     `json:"email"`
	FullName              string     `json:"fullName"`
	Password              *string    `json:"-"`
	Gender                *string    `json:"gender,omitempty"`
	IsActive              bool       `json:"isActive"`
	RefreshTokenHash      *string    `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
	Timestamps
}
