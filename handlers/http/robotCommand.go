package httpHandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"robot-server/usecases"
)

func atoi(s string) (int, error) { return strconv.Atoi(s) }

type moverRequest struct {
	Velocidad *int   `json:"velocidad"`
	Direccion string `json:"direccion"`
}

type rotarRequest struct {
	Angulo *float64 `json:"angulo"`
}

type buscarRequest struct {
	Objeto       string `json:"objeto"`
	DistanciaMax *int   `json:"distancia_max"`
}

func (h *RobotHandler) writeCommandResult(c *gin.Context, res *usecases.CommandResult, okMsg, failMsg string) {
	mensaje := okMsg
	if !res.Accepted {
		mensaje = failMsg
	}
	c.JSON(http.StatusOK, gin.H{
		"exito":   res.Accepted,
		"mensaje": mensaje,
		"comando": res.Command.Datos,
	})
}

// Mover handles POST /mover
func (h *RobotHandler) Mover(c *gin.Context) {
	var req moverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	res, err := h.useCase.Move(req.Velocidad, req.Direccion)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeCommandResult(c, res, "Comando enviado", "Error enviando comando")
}

// Rotar handles POST /rotar
func (h *RobotHandler) Rotar(c *gin.Context) {
	var req rotarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	res, err := h.useCase.Rotate(req.Angulo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeCommandResult(c, res, "Comando enviado", "Error enviando comando")
}

// Buscar handles POST /buscar
func (h *RobotHandler) Buscar(c *gin.Context) {
	var req buscarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	res, err := h.useCase.Search(req.Objeto, req.DistanciaMax)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeCommandResult(c, res, "Búsqueda iniciada", "Error iniciando búsqueda")
}

// Parar handles POST /parar
func (h *RobotHandler) Parar(c *gin.Context) {
	res := h.useCase.Stop()
	mensaje := "Robot detenido"
	if !res.Accepted {
		mensaje = "Error deteniendo robot"
	}
	c.JSON(http.StatusOK, gin.H{"exito": res.Accepted, "mensaje": mensaje})
}

// VolverInicio handles POST /volver_inicio
func (h *RobotHandler) VolverInicio(c *gin.Context) {
	res := h.useCase.ReturnHome()
	mensaje := "Robot retornando al inicio"
	if !res.Accepted {
		mensaje = "Error en comando"
	}
	c.JSON(http.StatusOK, gin.H{"exito": res.Accepted, "mensaje": mensaje})
}

// Calibrar handles POST /calibrar
func (h *RobotHandler) Calibrar(c *gin.Context) {
	res := h.useCase.Calibrate()
	mensaje := "Calibración iniciada"
	if !res.Accepted {
		mensaje = "Error en calibración"
	}
	c.JSON(http.StatusOK, gin.H{"exito": res.Accepted, "mensaje": mensaje})
}
