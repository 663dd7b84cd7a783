package repositories

import (
	"robot-server/db"
	"robot-server/entities"
)

type sensorDataPgRepository struct {
	db db.Database
}

func NewSensorDataPgRepository(database db.Database) SensorDataRepository {
	return &sensorDataPgRepository{db: database}
}

func (r *sensorDataPgRepository) LatestByDevice(deviceID int) (*entities.SensorData, error) {
	var data entities.SensorData
	err := r.db.GetDB().Where("dispositivo_id = ?", deviceID).
		Order("fecha DESC").First(&data).Error
	if err != nil {
		return nil, err
	}
	return &data, nil
}
