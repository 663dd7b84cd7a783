package repositories

import (
	"robot-server/db"
	"robot-server/entities"
	"time"
)

type devicePgRepository struct {
	db db.Database
}

func NewDevicePgRepository(database db.Database) DeviceRepository {
	return &devicePgRepository{db: database}
}

func (r *devicePgRepository) Create(device *entities.Device) error {
	return r.db.GetDB().Create(device).Error
}

func (r *devicePgRepository) GetByID(id int) (*entities.Device, error) {
	var device entities.Device
	err := r.db.GetDB().Where("id = ?", id).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *devicePgRepository) GetAll() ([]entities.Device, error) {
	var devices []entities.Device
	err := r.db.GetDB().Find(&devices).Error
	return devices, err
}

func (r *devicePgRepository) SetEstado(id int, estado string) error {
	return r.db.GetDB().Model(&entities.Device{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"estado":     estado,
			"updated_at": time.Now().UTC().Format(time.RFC3339),
		}).Error
}
