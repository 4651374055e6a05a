package models

import (
	"time"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pendiente"
	ReservationActive    ReservationStatus = "activa"
	ReservationFinished  ReservationStatus = "finalizada"
	ReservationCancelled ReservationStatus = "cancelada"
)

type Reservation struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	ClientID      uint `gorm:"index;not null" json:"cliente"`
	RoomID        uint `gorm:"index;not null" json:"habitacion"`
	// Unique index keeps the payment linkage one-to-one; NULLs are exempt.
	PaymentID     *uint             `gorm:"uniqueIndex" json:"pago"`
	StartDate     time.Time         `gorm:"type:date;index" json:"fecha_inicio"`
	EndDate       time.Time         `gorm:"type:date" json:"fecha_fin"`
	Status        ReservationStatus `gorm:"size:20;default:'pendiente';index" json:"estado"`
	ReferenceCode string            `gorm:"size:64;uniqueIndex" json:"codigo_referencia"`

	Client  Client   `gorm:"foreignKey:ClientID" json:"cliente_detalle,omitempty"`
	Room    Room     `gorm:"foreignKey:RoomID" json:"habitacion_detalle,omitempty"`
	Payment *Payment `gorm:"foreignKey:PaymentID" json:"pago_detalle,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
