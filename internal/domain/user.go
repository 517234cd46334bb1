package domain

import (
	"context"
	"time"
)

type User struct {
	ID         int64
	Handle     string
	FullName   string
	IsBanned   bool
	IsAdmin    bool
	LastActive time.Time
	CreatedAt  time.Time
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByHandle(ctx context.Context, handle string) (*User, error)
	// TouchUser refreshes last_active and the current handle/name on every interaction.
	TouchUser(ctx context.Context, id int64, handle, fullName string) error
	SetBanned(ctx context.Context, id int64, banned bool) error
	SetAdmin(ctx context.Context, id int64, admin bool) error
	ListUserIDs(ctx context.Context) ([]int64, error)
	CountUsers(ctx context.Context) (int64, error)
}
