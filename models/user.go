package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdministrator UserRole = "administrador"
	RoleReceptionist  UserRole = "recepcionista"
	RoleManager       UserRole = "gerente"
)

func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleAdministrator, RoleReceptionist, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:150" json:"username"`
	Email     string         `gorm:"size:150" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role      UserRole       `gorm:"size:20;default:'recepcionista'" json:"rol"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
