package usecases

import "robot-server/entities"

// Pure parameter checks, run before any side effect.

const (
	DireccionAdelante  = "adelante"
	DireccionAtras     = "atras"
	DireccionIzquierda = "izquierda"
	DireccionDerecha   = "derecha"
)

// DistanciaMaxDefault is used by buscar when the caller gives no range.
const DistanciaMaxDefault = 500

func direccionValida(direccion string) bool {
	switch direccion {
	case DireccionAdelante, DireccionAtras, DireccionIzquierda, DireccionDerecha:
		return true
	}
	return false
}

// ValidateMover checks the mover parameters: velocidad present and within
// the 0..255 PWM range, direccion one of the four cardinal moves.
func ValidateMover(velocidad *int, direccion string) error {
	if velocidad == nil || direccion == "" {
		return &ValidationError{Field: "velocidad", Message: "Faltan velocidad y dirección"}
	}
	if !direccionValida(direccion) {
		return &ValidationError{Field: "direccion", Message: "Dirección no válida: adelante, atras, izquierda, derecha"}
	}
	if *velocidad < 0 || *velocidad > 255 {
		return &ValidationError{Field: "velocidad", Message: "Velocidad debe estar entre 0 y 255"}
	}
	return nil
}

// ValidateRotar checks that angulo is present and within a full turn either way.
func ValidateRotar(angulo *float64) error {
	if angulo == nil {
		return &ValidationError{Field: "angulo", Message: "Ángulo requerido"}
	}
	if *angulo < -360 || *angulo > 360 {
		return &ValidationError{Field: "angulo", Message: "Ángulo debe estar entre -360 y 360"}
	}
	return nil
}

// ValidateBuscar checks that a target object label was given.
func ValidateBuscar(objeto string) error {
	if objeto == "" {
		return &ValidationError{Field: "objeto", Message: "Objeto a buscar requerido"}
	}
	return nil
}

// ValidateAccion checks the unified power endpoint's action parameter.
func ValidateAccion(accion string) error {
	if accion != entities.AccionEncender && accion != entities.AccionApagar {
		return &ValidationError{Field: "accion", Message: "Acción inválida. Use: encender o apagar"}
	}
	return nil
}
