package model

import (
	"context"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a registered account. PasswordHash holds a bcrypt hash.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Credentials is the username/password pair submitted on register and login.
type Credentials struct {
	Username string `form:"username" validate:"required,max=64"`
	Password string `form:"password" validate:"required,max=72"`
}
