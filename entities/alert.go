package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Alert severities
const (
	SeveridadBaja  = "baja"
	SeveridadMedia = "media"
	SeveridadAlta  = "alta"
)

// Alert is an operator-facing notification. Written once by this service,
// read and marked leida elsewhere.
type Alert struct {
	ID            string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string `gorm:"index" json:"user_id"`
	DispositivoID int    `gorm:"index" json:"dispositivo_id"`
	TipoAlerta    string `json:"tipo_alerta"`
	Descripcion   string `json:"descripcion"`
	Severidad     string `json:"severidad"`
	Leida         bool   `json:"leida"`
	CreatedAt     string `json:"created_at"`
}

func (Alert) TableName() string { return "alertas" }

func (a *Alert) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Severidad == "" {
		a.Severidad = SeveridadBaja
	}
	a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}
