package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"robot-server/usecases"
)

// RobotHandler exposes the robot control surface: power transitions, the
// unified toggle and the current-state query.
type RobotHandler struct {
	useCase *usecases.RobotUseCase
}

func NewRobotHandler(useCase *usecases.RobotUseCase) *RobotHandler {
	return &RobotHandler{useCase: useCase}
}

type powerRequest struct {
	DispositivoID *int `json:"dispositivo_id"`
}

// deviceID reads the optional dispositivo_id from the body, defaulting to 1.
// An absent or empty body is fine.
func deviceID(c *gin.Context) int {
	var req powerRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.DispositivoID != nil {
		return *req.DispositivoID
	}
	return 1
}

func actor(c *gin.Context) usecases.Actor {
	user := currentUser(c)
	return usecases.Actor{
		UserID:    user.ID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func comandoMQTT(accepted bool) string {
	if accepted {
		return "enviado"
	}
	return "no_disponible"
}

func (h *RobotHandler) writePowerError(c *gin.Context, err error, contexto string) {
	switch {
	case usecases.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrDeviceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Dispositivo no encontrado"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": contexto, "detalle": err.Error()})
	}
}

func (h *RobotHandler) writePowerResult(c *gin.Context, res *usecases.PowerResult, mensaje string) {
	c.JSON(http.StatusOK, gin.H{
		"exito":          true,
		"mensaje":        mensaje,
		"estado":         res.Estado,
		"dispositivo_id": res.DeviceID,
		"comando_mqtt":   comandoMQTT(res.CommandAccepted),
		"timestamp":      res.Timestamp,
	})
}

// Encender handles POST /encender
func (h *RobotHandler) Encender(c *gin.Context) {
	res, err := h.useCase.PowerOn(deviceID(c), actor(c))
	if err != nil {
		h.writePowerError(c, err, "Error al encender robot")
		return
	}
	h.writePowerResult(c, res, "Robot encendido correctamente")
}

// Apagar handles POST /apagar
func (h *RobotHandler) Apagar(c *gin.Context) {
	res, err := h.useCase.PowerOff(deviceID(c), actor(c))
	if err != nil {
		h.writePowerError(c, err, "Error al apagar robot")
		return
	}
	h.writePowerResult(c, res, "Robot apagado correctamente")
}

// CambiarEstado handles PUT /estado/:accion, the unified toggle.
func (h *RobotHandler) CambiarEstado(c *gin.Context) {
	accion := c.Param("accion")

	res, err := h.useCase.SetPower(accion, deviceID(c), actor(c))
	if err != nil {
		h.writePowerError(c, err, "Error al cambiar estado del robot")
		return
	}

	mensaje := "Robot encendido correctamente"
	if res.Estado == "inactivo" {
		mensaje = "Robot apagado correctamente"
	}
	h.writePowerResult(c, res, mensaje)
}

// EstadoActual handles GET /estado-actual
func (h *RobotHandler) EstadoActual(c *gin.Context) {
	id := 1
	if q := c.Query("dispositivo_id"); q != "" {
		if v, err := atoi(q); err == nil {
			id = v
		}
	}

	device, err := h.useCase.GetDevice(id)
	if err != nil {
		if errors.Is(err, usecases.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dispositivo no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener estado del robot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dispositivo_id":       device.ID,
		"nombre":               device.Nombre,
		"tipo":                 device.Tipo,
		"estado":               device.Estado,
		"encendido":            device.Estado == "activo",
		"ubicacion":            device.Ubicacion,
		"ultima_actualizacion": device.UpdatedAt,
		"metadata":             device.Metadata,
	})
}
