package domain

import "time"

const (
	RoleAdministrator = "Administrator"
	RoleUser          = "User"
)

// User models a gym member or staff account managed through the admin console.
type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest carries the fields needed to register a new account.
// The identifier is always assigned server-side.
type CreateUserRequest struct {
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name"  validate:"required"`
	Email     string   `json:"email"      validate:"required,email"`
	Password  string   `json:"password"   validate:"required,min=8"`
	Roles     []string `json:"roles"`
}

// UpdateUserRequest carries the mutable account fields.
type UpdateUserRequest struct {
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name"  validate:"required"`
	Email     string   `json:"email"      validate:"required,email"`
	Roles     []string `json:"roles"`
}
