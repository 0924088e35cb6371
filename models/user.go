package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
	RoleUser   UserRole = "USER"
)

// CanManageContent reports whether the role may call admin operations.
func (r UserRole) CanManageContent() bool {
	return r == RoleAdmin || r == RoleEditor
}

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Email     string    `json:"email,omitempty" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Role      UserRole  `json:"role,omitempty" gorm:"type:varchar(20);not null;default:'USER'"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Identity is the authenticated caller handed to admin operations.
type Identity struct {
	ID   uint     `json:"id"`
	Role UserRole `json:"role"`
}
