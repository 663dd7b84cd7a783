package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SensorData is an ambient reading (temperature, humidity) from the fixed
// home sensors. The AI analysis pipeline reads the latest row per device.
type SensorData struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	DispositivoID int     `gorm:"index" json:"dispositivo_id"`
	Tipo          string  `json:"tipo"`
	Valor         float64 `json:"valor"`
	Unidad        string  `json:"unidad"`
	Fecha         string  `gorm:"index" json:"fecha"`
}

func (SensorData) TableName() string { return "sensor_data" }

func (s *SensorData) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
