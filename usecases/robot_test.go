package usecases

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"robot-server/entities"
)

// ---- fakes ----

type fakeDeviceRepo struct {
	devices      map[int]*entities.Device
	getErr       error
	setEstadoErr error
	setCalls     int
}

func newFakeDeviceRepo(devices ...*entities.Device) *fakeDeviceRepo {
	repo := &fakeDeviceRepo{devices: make(map[int]*entities.Device)}
	for _, d := range devices {
		repo.devices[d.ID] = d
	}
	return repo
}

func (f *fakeDeviceRepo) Create(d *entities.Device) error {
	f.devices[d.ID] = d
	return nil
}

func (f *fakeDeviceRepo) GetByID(id int) (*entities.Device, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	d, ok := f.devices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDeviceRepo) GetAll() ([]entities.Device, error) {
	var all []entities.Device
	for _, d := range f.devices {
		all = append(all, *d)
	}
	return all, nil
}

func (f *fakeDeviceRepo) SetEstado(id int, estado string) error {
	f.setCalls++
	if f.setEstadoErr != nil {
		return f.setEstadoErr
	}
	if d, ok := f.devices[id]; ok {
		d.Estado = estado
	}
	return nil
}

type fakePublisher struct {
	commands []entities.RobotCommand
	accept   bool
}

func (f *fakePublisher) SendCommand(cmd entities.RobotCommand) bool {
	f.commands = append(f.commands, cmd)
	return f.accept
}

type fakeLogRepo struct {
	entries []*entities.ActionLog
	err     error
}

func (f *fakeLogRepo) Create(entry *entities.ActionLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

type fakeAlertRepo struct {
	alerts []*entities.Alert
	err    error
}

func (f *fakeAlertRepo) Create(alert *entities.Alert) error {
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, alert)
	return nil
}

type robotFixture struct {
	uc        *RobotUseCase
	devices   *fakeDeviceRepo
	publisher *fakePublisher
	logs      *fakeLogRepo
	alerts    *fakeAlertRepo
}

func newRobotFixture(devices ...*entities.Device) *robotFixture {
	f := &robotFixture{
		devices:   newFakeDeviceRepo(devices...),
		publisher: &fakePublisher{accept: true},
		logs:      &fakeLogRepo{},
		alerts:    &fakeAlertRepo{},
	}
	f.uc = NewRobotUseCase(f.devices, f.publisher, f.logs, f.alerts)
	return f
}

func robot(id int, estado string) *entities.Device {
	return &entities.Device{ID: id, Nombre: "Robot 1", Tipo: "robot", Estado: estado}
}

var testActor = Actor{UserID: "user-1", IP: "10.0.0.1", UserAgent: "test"}

// ---- power transitions ----

func TestPowerOnPersistsStateThenPublishes(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoInactivo))

	res, err := f.uc.PowerOn(1, testActor)
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}

	if f.devices.devices[1].Estado != entities.EstadoActivo {
		t.Fatalf("device estado = %q, want activo", f.devices.devices[1].Estado)
	}
	if res.Estado != entities.EstadoActivo {
		t.Fatalf("result estado = %q, want activo", res.Estado)
	}
	if !res.CommandAccepted {
		t.Fatal("expected command to be accepted")
	}

	if len(f.publisher.commands) != 1 {
		t.Fatalf("published %d commands, want 1", len(f.publisher.commands))
	}
	cmd := f.publisher.commands[0]
	if cmd.Accion != entities.AccionEncender {
		t.Fatalf("published accion = %q, want encender", cmd.Accion)
	}
	if cmd.Datos["estado"] != entities.EstadoActivo {
		t.Fatalf("published estado = %v, want activo", cmd.Datos["estado"])
	}

	if !res.LogRecorded || len(f.logs.entries) != 1 {
		t.Fatal("expected one action log entry")
	}
	if !res.AlertRecorded || len(f.alerts.alerts) != 1 {
		t.Fatal("expected one alert")
	}
}

func TestPowerOffPublishesStopBeforePowerCommand(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoActivo))

	res, err := f.uc.PowerOff(1, testActor)
	if err != nil {
		t.Fatalf("PowerOff: %v", err)
	}

	if len(f.publisher.commands) != 2 {
		t.Fatalf("published %d commands, want 2", len(f.publisher.commands))
	}
	if f.publisher.commands[0].Accion != entities.AccionParar {
		t.Fatalf("first command = %q, want parar", f.publisher.commands[0].Accion)
	}
	if f.publisher.commands[1].Accion != entities.AccionApagar {
		t.Fatalf("second command = %q, want apagar", f.publisher.commands[1].Accion)
	}
	if res.Estado != entities.EstadoInactivo {
		t.Fatalf("result estado = %q, want inactivo", res.Estado)
	}
}

func TestPowerOffFromAnyStatePublishesStop(t *testing.T) {
	for _, estado := range []string{entities.EstadoActivo, entities.EstadoInactivo, entities.EstadoDesconocido} {
		f := newRobotFixture(robot(1, estado))
		if _, err := f.uc.PowerOff(1, testActor); err != nil {
			t.Fatalf("PowerOff from %q: %v", estado, err)
		}
		if f.publisher.commands[0].Accion != entities.AccionParar {
			t.Fatalf("from %q: first command = %q, want parar", estado, f.publisher.commands[0].Accion)
		}
	}
}

func TestPowerTransitionUnknownDeviceHasNoSideEffects(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoActivo))

	_, err := f.uc.PowerOn(999999, testActor)
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("error = %v, want ErrDeviceNotFound", err)
	}

	if f.devices.setCalls != 0 {
		t.Fatal("state was written for a nonexistent device")
	}
	if len(f.publisher.commands) != 0 {
		t.Fatal("a command was published for a nonexistent device")
	}
	if len(f.logs.entries) != 0 || len(f.alerts.alerts) != 0 {
		t.Fatal("audit records were written for a nonexistent device")
	}
}

func TestPowerOnStateWriteFailureIsTerminal(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoInactivo))
	f.devices.setEstadoErr = errors.New("connection reset")

	_, err := f.uc.PowerOn(1, testActor)
	if err == nil {
		t.Fatal("expected error when state write fails")
	}
	if len(f.publisher.commands) != 0 {
		t.Fatal("command published despite failed state write")
	}
	if len(f.logs.entries) != 0 || len(f.alerts.alerts) != 0 {
		t.Fatal("audit records written despite failed state write")
	}
}

func TestPowerOnPublishFailureDegradesButSucceeds(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoInactivo))
	f.publisher.accept = false

	res, err := f.uc.PowerOn(1, testActor)
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if res.CommandAccepted {
		t.Fatal("expected CommandAccepted false")
	}
	// State was committed before the publish attempt
	if f.devices.devices[1].Estado != entities.EstadoActivo {
		t.Fatal("state not persisted despite publish failure")
	}
}

func TestAuditFailuresDoNotFailTheRequest(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoInactivo))
	f.logs.err = errors.New("logs table unavailable")
	f.alerts.err = errors.New("alerts table unavailable")

	res, err := f.uc.PowerOn(1, testActor)
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	if res.LogRecorded || res.AlertRecorded {
		t.Fatal("secondary effects reported recorded despite failures")
	}
	if !res.CommandAccepted || res.Estado != entities.EstadoActivo {
		t.Fatal("primary effects degraded by audit failures")
	}
}

func TestUnifiedToggleMatchesDedicatedEndpoints(t *testing.T) {
	direct := newRobotFixture(robot(1, entities.EstadoInactivo))
	unified := newRobotFixture(robot(1, entities.EstadoInactivo))

	resDirect, err := direct.uc.PowerOn(1, testActor)
	if err != nil {
		t.Fatalf("PowerOn: %v", err)
	}
	resUnified, err := unified.uc.SetPower("encender", 1, testActor)
	if err != nil {
		t.Fatalf("SetPower: %v", err)
	}

	if direct.devices.devices[1].Estado != unified.devices.devices[1].Estado {
		t.Fatal("final device state diverges between endpoints")
	}
	if resDirect.Estado != resUnified.Estado {
		t.Fatal("result estado diverges between endpoints")
	}
	if len(direct.publisher.commands) != len(unified.publisher.commands) {
		t.Fatal("published command sequence diverges between endpoints")
	}
}

func TestSetPowerRejectsUnknownAccion(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoActivo))

	_, err := f.uc.SetPower("bailar", 1, testActor)
	if !IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(f.publisher.commands) != 0 || f.devices.setCalls != 0 {
		t.Fatal("side effects performed for invalid accion")
	}
}

// ---- motion commands ----

func TestMoveRejectsBeforePublishing(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoActivo))

	if _, err := f.uc.Move(intPtr(300), DireccionAdelante); !IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if _, err := f.uc.Move(intPtr(100), "diagonal"); !IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(f.publisher.commands) != 0 {
		t.Fatal("command published despite validation failure")
	}
}

func TestMoveIgnoresDeviceState(t *testing.T) {
	// Motion is deliberately not gated on power state: an inactivo robot
	// still gets the command.
	f := newRobotFixture(robot(1, entities.EstadoInactivo))

	res, err := f.uc.Move(intPtr(120), DireccionAdelante)
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if !res.Accepted {
		t.Fatal("expected accepted command")
	}
	if len(f.publisher.commands) != 1 {
		t.Fatalf("published %d commands, want 1", len(f.publisher.commands))
	}
	if f.publisher.commands[0].Datos["velocidad"] != 120 {
		t.Fatalf("published velocidad = %v, want 120", f.publisher.commands[0].Datos["velocidad"])
	}
}

func TestRotateRejectsOutOfRange(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoActivo))

	if _, err := f.uc.Rotate(floatPtr(400)); !IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(f.publisher.commands) != 0 {
		t.Fatal("command published despite validation failure")
	}

	res, err := f.uc.Rotate(floatPtr(-180))
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if res.Command.Datos["angulo"] != -180.0 {
		t.Fatalf("published angulo = %v, want -180", res.Command.Datos["angulo"])
	}
}

func TestSearchDefaultsDistanciaMax(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoActivo))

	res, err := f.uc.Search("pelota", nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Command.Datos["distancia_max"] != DistanciaMaxDefault {
		t.Fatalf("distancia_max = %v, want %d", res.Command.Datos["distancia_max"], DistanciaMaxDefault)
	}

	if _, err := f.uc.Search("", nil); !IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestStopPublishFailureReportedInResult(t *testing.T) {
	f := newRobotFixture(robot(1, entities.EstadoActivo))
	f.publisher.accept = false

	res := f.uc.Stop()
	if res.Accepted {
		t.Fatal("expected Accepted false when channel rejects")
	}
	if res.Command.Accion != entities.AccionParar {
		t.Fatalf("command accion = %q, want parar", res.Command.Accion)
	}
}
