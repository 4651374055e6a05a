package models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100" json:"nombre"`
	Document  string         `gorm:"size:20;uniqueIndex" json:"documento"`
	Email     string         `gorm:"size:150;uniqueIndex" json:"email"`
	Phone     string         `gorm:"size:20" json:"telefono"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
