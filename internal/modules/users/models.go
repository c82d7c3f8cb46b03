package users

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID              string     `json:"id"`
	FullName        string     `json:"full_name,omitempty"`
	Email           string     `json:"email"`
	PhoneE164       string     `json:"-"`
	Role            Role       `json:"role"`
	PasswordHash    []byte     `json:"-"`
	EmailVerifiedAt *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"-"`
}
