package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "disponible"
	RoomOccupied    RoomStatus = "ocupada"
	RoomMaintenance RoomStatus = "mantenimiento"
)

// ValidRoomStatus reports whether s is one of the known room states.
func ValidRoomStatus(s RoomStatus) bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// Room.Status is owned by the reservation flow: create/check-in set it to
// ocupada, check-out/cancel/delete set it back to disponible. Direct status
// updates through the CRUD surface are meant for mantenimiento toggling.
type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Type      string         `gorm:"size:50" json:"tipo"`
	Status    RoomStatus     `gorm:"size:20;default:'disponible'" json:"estado"`
	Price     float64        `gorm:"type:decimal(8,2)" json:"precio"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
