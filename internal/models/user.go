package models

import "strings"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsValidRole reports whether role is user or admin.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

type User struct {
	Base
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"size:10;not null;default:'user'" json:"role"`
	Avatar       string `gorm:"size:512" json:"avatar"`
	Phone        string `gorm:"size:30" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lower-cases and trims an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
