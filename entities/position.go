package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionSample is one telemetry point reported by the robot itself.
// Append-only; duplicates are tolerated as distinct samples.
type PositionSample struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	DispositivoID int     `gorm:"index" json:"dispositivo_id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Angulo        float64 `json:"angulo"`
	Bateria       float64 `json:"bateria"`
	Fecha         string  `gorm:"index" json:"fecha"`
}

func (PositionSample) TableName() string { return "posicion_robot" }

func (p *PositionSample) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
