package models

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "User"
	RoleAdmin UserRole = "Admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"not null;size:50"`
	Password  string    `json:"-" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"not null;default:'User'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the authenticated caller resolved from a validated token.
// It is produced once by token validation and passed explicitly into the
// services that need it; nothing reads it back out of ambient state.
type Identity struct {
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}
