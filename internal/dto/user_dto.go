package dto

import "time"

// LoginDTO is the credentials payload for /auth/login.
type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponseDTO carries the signed token plus basic identity.
type LoginResponseDTO struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserCreateDTO creates a single account. Role is set by the calling route,
// not by the client.
type UserCreateDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserBulkCreateDTO inserts many student accounts at once.
type UserBulkCreateDTO struct {
	Users []UserCreateDTO `json:"users" binding:"required,min=1,dive"`
}

// UserResponseDTO is the account shape returned to admin/mediator views.
type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
