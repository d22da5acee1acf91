package model

import "time"

const (
	RoleFarmer     = "farmer"
	RoleAdmin      = "admin"
	RoleResearcher = "researcher"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleFarmer, RoleAdmin, RoleResearcher:
		return true
	}
	return false
}

// User is a registered principal. The password hash never leaves the server:
// the json tag guarantees it is dropped from every response body.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthClaims is the authenticated identity extracted from a bearer token.
type AuthClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AuthResult is the response payload shared by register and login.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
