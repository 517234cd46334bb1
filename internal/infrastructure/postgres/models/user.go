package models

import "time"

type UserModel struct {
	ID         int64  `gorm:"primaryKey"`
	Username   string `gorm:"index:idx_users_username"`
	FullName   string
	IsBanned   bool
	IsAdmin    bool
	LastActive time.Time
	CreatedAt  time.Time
}
