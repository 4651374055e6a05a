package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentCard     PaymentMethod = "Tarjeta"
	PaymentTransfer PaymentMethod = "Transferencia"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentSuccessful PaymentStatus = "exitoso"
	PaymentPending    PaymentStatus = "pendiente"
	PaymentFailed     PaymentStatus = "fallido"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentSuccessful, PaymentPending, PaymentFailed:
		return true
	}
	return false
}

type Payment struct {
	ID     uint          `gorm:"primaryKey" json:"id"`
	Amount float64       `gorm:"type:decimal(10,2)" json:"monto"`
	Date   time.Time     `json:"fecha"` // server-assigned at creation, never updated
	Method PaymentMethod `gorm:"size:50;default:'Efectivo'" json:"tipo_pago"`
	Status PaymentStatus `gorm:"size:20;default:'exitoso'" json:"estado"`

	// Back-reference of the (at most one) reservation linked to this payment.
	// Computed on read, not a column.
	ReservationID *uint `gorm:"-" json:"reserva_id"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
