package httpHandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"robot-server/usecases"
)

// TelemetryHandler serves the read-only telemetry queries. None of them
// mutate anything; absence of data yields defaults, never an error.
type TelemetryHandler struct {
	useCase *usecases.TelemetryUseCase
}

func NewTelemetryHandler(useCase *usecases.TelemetryUseCase) *TelemetryHandler {
	return &TelemetryHandler{useCase: useCase}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func queryDeviceID(c *gin.Context) int {
	return queryInt(c, "dispositivo_id", 1)
}

// Posicion handles GET /posicion
func (h *TelemetryHandler) Posicion(c *gin.Context) {
	limit := queryInt(c, "limit", 1)

	samples, err := h.useCase.LatestPositions(queryDeviceID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener posición"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(samples),
		"data":  samples,
	})
}

// Detecciones handles GET /detecciones
func (h *TelemetryHandler) Detecciones(c *gin.Context) {
	limite := queryInt(c, "limite", 50)
	objeto := c.Query("objeto")

	detections, err := h.useCase.LatestDetections(queryDeviceID(c), objeto, limite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener detecciones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(detections),
		"data":  detections,
	})
}

// DeteccionesPorObjeto handles GET /detecciones/:objeto
func (h *TelemetryHandler) DeteccionesPorObjeto(c *gin.Context) {
	objeto := c.Param("objeto")
	limite := queryInt(c, "limite", 50)

	detections, err := h.useCase.LatestDetections(queryDeviceID(c), objeto, limite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener detecciones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"objeto": objeto,
		"total":  len(detections),
		"data":   detections,
	})
}

// Estado handles GET /estado
func (h *TelemetryHandler) Estado(c *gin.Context) {
	status, err := h.useCase.Status(queryDeviceID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error obteniendo estado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dispositivo": status.Dispositivo,
		"estado":      status.Estado,
		"bateria":     status.Bateria,
		"posicion": gin.H{
			"x":      status.X,
			"y":      status.Y,
			"angulo": status.Angulo,
		},
		"timestamp": status.Timestamp,
	})
}

// HistorialMovimientos handles GET /historial-movimientos
func (h *TelemetryHandler) HistorialMovimientos(c *gin.Context) {
	limite := queryInt(c, "limite", 100)

	samples, err := h.useCase.MovementHistory(queryDeviceID(c), limite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener historial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(samples),
		"data":  samples,
	})
}

// Resumen handles GET /resumen
func (h *TelemetryHandler) Resumen(c *gin.Context) {
	summary, err := h.useCase.Summary(queryDeviceID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener resumen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalMovimientos":  summary.TotalMovimientos,
		"totalDetecciones":  summary.TotalDetecciones,
		"objetosDetectados": summary.ObjetosDetectados,
		"ultimaActividad":   summary.UltimaActividad,
	})
}
