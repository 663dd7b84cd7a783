package entities

import (
	"time"

	"gorm.io/gorm"
)

// Device estados
const (
	EstadoActivo      = "activo"
	EstadoInactivo    = "inactivo"
	EstadoDesconocido = "desconocido"
)

// Device is one physical robot or sensor unit, keyed by the integer id
// every command addresses. State is only ever one of the Estado constants.
type Device struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	Ubicacion string `json:"ubicacion"`
	Estado    string `json:"estado"`
	Metadata  string `gorm:"type:text" json:"metadata"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (Device) TableName() string { return "dispositivos" }

func (d *Device) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now().UTC().Format(time.RFC3339)
	if d.CreatedAt == "" {
		d.CreatedAt = now
	}
	if d.UpdatedAt == "" {
		d.UpdatedAt = now
	}
	if d.Estado == "" {
		d.Estado = EstadoDesconocido
	}
	return
}
