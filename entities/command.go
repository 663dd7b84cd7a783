package entities

// RobotCommand is the ephemeral instruction relayed to the robot over the
// message channel. It is never persisted; it exists for one request only.
type RobotCommand struct {
	Accion string                 `json:"accion"`
	Datos  map[string]interface{} `json:"datos,omitempty"`
}

// Acciones the robot understands.
const (
	AccionEncender = "encender"
	AccionApagar   = "apagar"
	AccionMover    = "mover"
	AccionRotar    = "rotar"
	AccionBuscar   = "buscar"
	AccionParar    = "parar"
	AccionInicio   = "inicio"
	AccionCalibrar = "calibrar"
)
