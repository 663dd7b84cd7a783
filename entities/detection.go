package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Detection is one object sighting reported by the robot's camera.
// Same append-only lifecycle as PositionSample.
type Detection struct {
	ID              string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	DispositivoID   int     `gorm:"index" json:"dispositivo_id"`
	ObjetoDetectado string  `gorm:"index" json:"objeto_detectado"`
	Confianza       float64 `json:"confianza"`
	Fecha           string  `gorm:"index" json:"fecha"`
}

func (Detection) TableName() string { return "detecciones_objeto" }

func (d *Detection) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return
}
