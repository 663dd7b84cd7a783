package usecases

import "robot-server/entities"

// CommandResult is the outcome of a motion command: the command that was
// built and whether the message channel accepted it. Motion commands are not
// gated on device state; an inactivo robot still receives them.
type CommandResult struct {
	Accepted bool
	Command  entities.RobotCommand
}

func (uc *RobotUseCase) dispatch(cmd entities.RobotCommand) *CommandResult {
	return &CommandResult{
		Accepted: uc.publisher.SendCommand(cmd),
		Command:  cmd,
	}
}

// Move validates and dispatches a mover command.
func (uc *RobotUseCase) Move(velocidad *int, direccion string) (*CommandResult, error) {
	if err := ValidateMover(velocidad, direccion); err != nil {
		return nil, err
	}
	return uc.dispatch(entities.RobotCommand{
		Accion: entities.AccionMover,
		Datos: map[string]interface{}{
			"velocidad": *velocidad,
			"direccion": direccion,
		},
	}), nil
}

// Rotate validates and dispatches a rotar command.
func (uc *RobotUseCase) Rotate(angulo *float64) (*CommandResult, error) {
	if err := ValidateRotar(angulo); err != nil {
		return nil, err
	}
	return uc.dispatch(entities.RobotCommand{
		Accion: entities.AccionRotar,
		Datos:  map[string]interface{}{"angulo": *angulo},
	}), nil
}

// Search validates and dispatches a buscar command. distanciaMax defaults
// to DistanciaMaxDefault when nil.
func (uc *RobotUseCase) Search(objeto string, distanciaMax *int) (*CommandResult, error) {
	if err := ValidateBuscar(objeto); err != nil {
		return nil, err
	}
	distancia := DistanciaMaxDefault
	if distanciaMax != nil {
		distancia = *distanciaMax
	}
	return uc.dispatch(entities.RobotCommand{
		Accion: entities.AccionBuscar,
		Datos: map[string]interface{}{
			"objeto":        objeto,
			"distancia_max": distancia,
		},
	}), nil
}

// Stop dispatches an unconditional parar command.
func (uc *RobotUseCase) Stop() *CommandResult {
	return uc.dispatch(entities.RobotCommand{Accion: entities.AccionParar})
}

// ReturnHome sends the robot back to its starting point.
func (uc *RobotUseCase) ReturnHome() *CommandResult {
	return uc.dispatch(entities.RobotCommand{Accion: entities.AccionInicio})
}

// Calibrate starts a sensor calibration run.
func (uc *RobotUseCase) Calibrate() *CommandResult {
	return uc.dispatch(entities.RobotCommand{Accion: entities.AccionCalibrar})
}
