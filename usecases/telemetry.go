package usecases

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"robot-server/entities"
	"robot-server/repositories"
)

// TelemetryUseCase answers the read-only queries over the robot's reported
// positions and detections. Absence of data is never an error here; every
// query substitutes zero/empty defaults instead.
type TelemetryUseCase struct {
	devices    repositories.DeviceRepository
	positions  repositories.PositionRepository
	detections repositories.DetectionRepository
}

func NewTelemetryUseCase(devices repositories.DeviceRepository, positions repositories.PositionRepository, detections repositories.DetectionRepository) *TelemetryUseCase {
	return &TelemetryUseCase{
		devices:    devices,
		positions:  positions,
		detections: detections,
	}
}

// LatestPositions returns up to limit samples, newest first.
func (uc *TelemetryUseCase) LatestPositions(deviceID, limit int) ([]entities.PositionSample, error) {
	return uc.positions.Latest(deviceID, limit)
}

// MovementHistory returns up to limit samples in chronological order.
func (uc *TelemetryUseCase) MovementHistory(deviceID, limit int) ([]entities.PositionSample, error) {
	return uc.positions.Chronological(deviceID, limit)
}

// LatestDetections returns up to limit detections, newest first, optionally
// filtered by object label.
func (uc *TelemetryUseCase) LatestDetections(deviceID int, objeto string, limit int) ([]entities.Detection, error) {
	return uc.detections.Latest(deviceID, objeto, limit)
}

// RobotStatus is the combined device + last-position view behind GET /estado.
type RobotStatus struct {
	Dispositivo string
	Estado      string
	Bateria     float64
	X           float64
	Y           float64
	Angulo      float64
	Timestamp   string
}

// Status assembles the general status with defaults for whatever is missing:
// an unknown device reads as "desconocido", no telemetry reads as battery 0
// at the origin.
func (uc *TelemetryUseCase) Status(deviceID int) (*RobotStatus, error) {
	status := &RobotStatus{
		Dispositivo: "Robot 1",
		Estado:      entities.EstadoDesconocido,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	device, err := uc.devices.GetByID(deviceID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if device != nil {
		if device.Nombre != "" {
			status.Dispositivo = device.Nombre
		}
		if device.Estado != "" {
			status.Estado = device.Estado
		}
	}

	samples, err := uc.positions.Latest(deviceID, 1)
	if err != nil {
		return nil, err
	}
	if len(samples) > 0 {
		last := samples[0]
		status.Bateria = last.Bateria
		status.X = last.X
		status.Y = last.Y
		status.Angulo = last.Angulo
		status.Timestamp = last.Fecha
	}

	return status, nil
}

// ActivitySummary aggregates full-population telemetry counts; it is never
// bounded by a page size.
type ActivitySummary struct {
	TotalMovimientos  int64
	TotalDetecciones  int64
	ObjetosDetectados []string
	UltimaActividad   *string
}

// Summary counts all movements and detections for the device. Zero records
// yield zero counts, an empty label list and a null last-activity timestamp.
func (uc *TelemetryUseCase) Summary(deviceID int) (*ActivitySummary, error) {
	movimientos, err := uc.positions.Count(deviceID)
	if err != nil {
		return nil, err
	}
	detecciones, err := uc.detections.Count(deviceID)
	if err != nil {
		return nil, err
	}
	objetos, err := uc.detections.DistinctObjects(deviceID)
	if err != nil {
		return nil, err
	}
	if objetos == nil {
		objetos = []string{}
	}

	summary := &ActivitySummary{
		TotalMovimientos:  movimientos,
		TotalDetecciones:  detecciones,
		ObjetosDetectados: objetos,
	}

	latest, err := uc.positions.Latest(deviceID, 1)
	if err != nil {
		return nil, err
	}
	if len(latest) > 0 {
		summary.UltimaActividad = &latest[0].Fecha
	}

	return summary, nil
}
