package repositories

import "robot-server/entities"

type DeviceRepository interface {
	Create(device *entities.Device) error
	GetByID(id int) (*entities.Device, error)
	GetAll() ([]entities.Device, error)
	SetEstado(id int, estado string) error
}

type PositionRepository interface {
	Append(sample *entities.PositionSample) error
	// Latest returns up to limit samples, newest first.
	Latest(deviceID, limit int) ([]entities.PositionSample, error)
	// Chronological returns up to limit samples, oldest first.
	Chronological(deviceID, limit int) ([]entities.PositionSample, error)
	Count(deviceID int) (int64, error)
}

type DetectionRepository interface {
	Append(detection *entities.Detection) error
	// Latest returns up to limit detections, newest first, optionally
	// filtered by detected object label.
	Latest(deviceID int, objeto string, limit int) ([]entities.Detection, error)
	Count(deviceID int) (int64, error)
	DistinctObjects(deviceID int) ([]string, error)
}

type ActionLogRepository interface {
	Create(entry *entities.ActionLog) error
}

type AlertRepository interface {
	Create(alert *entities.Alert) error
}

type SensorDataRepository interface {
	LatestByDevice(deviceID int) (*entities.SensorData, error)
}

type AIInteractionRepository interface {
	Create(interaction *entities.AIInteraction) error
	// GetRecent returns up to limit interactions, newest first. Empty
	// userID means no user filter.
	GetRecent(userID string, limit int) ([]entities.AIInteraction, error)
	GetAllByUser(userID string) ([]entities.AIInteraction, error)
}
