package repositories

import (
	"robot-server/db"
	"robot-server/entities"
)

type positionPgRepository struct {
	db db.Database
}

func NewPositionPgRepository(database db.Database) PositionRepository {
	return &positionPgRepository{db: database}
}

func (r *positionPgRepository) Append(sample *entities.PositionSample) error {
	return r.db.GetDB().Create(sample).Error
}

func (r *positionPgRepository) Latest(deviceID, limit int) ([]entities.PositionSample, error) {
	var samples []entities.PositionSample
	err := r.db.GetDB().Where("dispositivo_id = ?", deviceID).
		Order("fecha DESC").Limit(limit).Find(&samples).Error
	return samples, err
}

func (r *positionPgRepository) Chronological(deviceID, limit int) ([]entities.PositionSample, error) {
	var samples []entities.PositionSample
	err := r.db.GetDB().Where("dispositivo_id = ?", deviceID).
		Order("fecha ASC").Limit(limit).Find(&samples).Error
	return samples, err
}

func (r *positionPgRepository) Count(deviceID int) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.PositionSample{}).
		Where("dispositivo_id = ?", deviceID).Count(&count).Error
	return count, err
}

type detectionPgRepository struct {
	db db.Database
}

func NewDetectionPgRepository(database db.Database) DetectionRepository {
	return &detectionPgRepository{db: database}
}

func (r *detectionPgRepository) Append(detection *entities.Detection) error {
	return r.db.GetDB().Create(detection).Error
}

func (r *detectionPgRepository) Latest(deviceID int, objeto string, limit int) ([]entities.Detection, error) {
	var detections []entities.Detection
	q := r.db.GetDB().Where("dispositivo_id = ?", deviceID)
	if objeto != "" {
		q = q.Where("objeto_detectado = ?", objeto)
	}
	err := q.Order("fecha DESC").Limit(limit).Find(&detections).Error
	return detections, err
}

func (r *detectionPgRepository) Count(deviceID int) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Detection{}).
		Where("dispositivo_id = ?", deviceID).Count(&count).Error
	return count, err
}

func (r *detectionPgRepository) DistinctObjects(deviceID int) ([]string, error) {
	var objects []string
	err := r.db.GetDB().Model(&entities.Detection{}).
		Where("dispositivo_id = ?", deviceID).
		Distinct("objeto_detectado").Pluck("objeto_detectado", &objects).Error
	return objects, err
}
