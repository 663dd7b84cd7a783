package usecases

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"robot-server/entities"
	"robot-server/mqtt"
	"robot-server/repositories"
)

// Actor identifies the operator behind a request for audit purposes.
type Actor struct {
	UserID    string
	IP        string
	UserAgent string
}

// RobotUseCase sequences device state writes, command publication and the
// best-effort audit side channel.
//
// The device row is read then written without a transaction: two concurrent
// power transitions on the same id race and either final value can win.
type RobotUseCase struct {
	devices   repositories.DeviceRepository
	publisher mqtt.CommandPublisher
	logs      repositories.ActionLogRepository
	alerts    repositories.AlertRepository
}

func NewRobotUseCase(devices repositories.DeviceRepository, publisher mqtt.CommandPublisher, logs repositories.ActionLogRepository, alerts repositories.AlertRepository) *RobotUseCase {
	return &RobotUseCase{
		devices:   devices,
		publisher: publisher,
		logs:      logs,
		alerts:    alerts,
	}
}

// PowerResult reports a power transition's primary effects (persisted state,
// channel hand-off) separately from the best-effort secondary ones.
// CommandAccepted true only certifies local hand-off to the message channel,
// never that the robot executed anything.
type PowerResult struct {
	DeviceID        int
	Estado          string
	CommandAccepted bool
	LogRecorded     bool
	AlertRecorded   bool
	Timestamp       string
}

// PowerOn transitions the device to activo from any state.
func (uc *RobotUseCase) PowerOn(deviceID int, actor Actor) (*PowerResult, error) {
	return uc.setPower(entities.AccionEncender, deviceID, actor)
}

// PowerOff transitions the device to inactivo from any state.
func (uc *RobotUseCase) PowerOff(deviceID int, actor Actor) (*PowerResult, error) {
	return uc.setPower(entities.AccionApagar, deviceID, actor)
}

// SetPower is the unified toggle. It validates accion and then runs the
// exact same transition as the dedicated endpoints.
func (uc *RobotUseCase) SetPower(accion string, deviceID int, actor Actor) (*PowerResult, error) {
	if err := ValidateAccion(accion); err != nil {
		return nil, err
	}
	return uc.setPower(accion, deviceID, actor)
}

// setPower is the single code path behind every power transition.
// Effect order: verify existence, (apagar: publish parar), persist state,
// publish power command, best-effort log + alert.
func (uc *RobotUseCase) setPower(accion string, deviceID int, actor Actor) (*PowerResult, error) {
	if _, err := uc.devices.GetByID(deviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("error consultando dispositivo: %w", err)
	}

	nuevoEstado := entities.EstadoActivo
	if accion == entities.AccionApagar {
		nuevoEstado = entities.EstadoInactivo
		// Stop any motion before cutting power
		uc.publisher.SendCommand(entities.RobotCommand{Accion: entities.AccionParar})
	}

	if err := uc.devices.SetEstado(deviceID, nuevoEstado); err != nil {
		// State not committed: publish nothing, record nothing
		return nil, fmt.Errorf("no se pudo actualizar el estado: %w", err)
	}

	accepted := uc.publisher.SendCommand(entities.RobotCommand{
		Accion: accion,
		Datos:  map[string]interface{}{"estado": nuevoEstado},
	})

	verbo := "encendido"
	if accion == entities.AccionApagar {
		verbo = "apagado"
	}

	res := &PowerResult{
		DeviceID:        deviceID,
		Estado:          nuevoEstado,
		CommandAccepted: accepted,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	res.LogRecorded = uc.recordLog(actor, "robot_"+verbo, fmt.Sprintf("Robot %d %s", deviceID, verbo))
	res.AlertRecorded = uc.recordAlert(actor, deviceID, "robot_"+verbo, alertDescripcion(accion))
	return res, nil
}

func alertDescripcion(accion string) string {
	if accion == entities.AccionApagar {
		return "Robot desactivado correctamente"
	}
	return "Robot activado correctamente"
}

// GetDevice returns the device row for estado-actual.
func (uc *RobotUseCase) GetDevice(deviceID int) (*entities.Device, error) {
	device, err := uc.devices.GetByID(deviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, err
	}
	return device, nil
}

// recordLog writes an audit entry. Failures are logged and swallowed; the
// returned bool lets callers report the attempt without failing on it.
func (uc *RobotUseCase) recordLog(actor Actor, accion, descripcion string) bool {
	entry := &entities.ActionLog{
		UserID:      actor.UserID,
		Accion:      accion,
		Descripcion: descripcion,
		IPAddress:   actor.IP,
		UserAgent:   actor.UserAgent,
	}
	if err := uc.logs.Create(entry); err != nil {
		log.Printf("warning: could not record action log: %v", err)
		return false
	}
	return true
}

func (uc *RobotUseCase) recordAlert(actor Actor, deviceID int, tipo, descripcion string) bool {
	alert := &entities.Alert{
		UserID:        actor.UserID,
		DispositivoID: deviceID,
		TipoAlerta:    tipo,
		Descripcion:   descripcion,
		Severidad:     entities.SeveridadBaja,
		Leida:         false,
	}
	if err := uc.alerts.Create(alert); err != nil {
		log.Printf("warning: could not create alert: %v", err)
		return false
	}
	return true
}
