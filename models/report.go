package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report is informational only: a record of who produced which report and
// when, with the filter parameters used, stored as-is.
type Report struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Type       string         `gorm:"size:50" json:"tipo"`
	ReportDate time.Time      `gorm:"type:date" json:"fecha_reporte"`
	UserID     uint           `gorm:"index;not null" json:"usuario"`
	Parameters datatypes.JSON `json:"parametros,omitempty"`

	User User `gorm:"foreignKey:UserID" json:"usuario_detalle,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
