package httpHandler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"robot-server/usecases"
)

// IAHandler exposes the environmental analysis pipeline.
type IAHandler struct {
	useCase *usecases.AIUseCase
}

func NewIAHandler(useCase *usecases.AIUseCase) *IAHandler {
	return &IAHandler{useCase: useCase}
}

// Analizar handles POST /analizar
func (h *IAHandler) Analizar(c *gin.Context) {
	user := currentUser(c)

	result, err := h.useCase.Analyze(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, usecases.ErrAINotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAI API Key no configurada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar análisis con IA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"respuesta": result.Respuesta,
		"modelo":    result.Modelo,
	})
}

// Historial handles GET /historial
func (h *IAHandler) Historial(c *gin.Context) {
	user := currentUser(c)
	limite := queryInt(c, "limite", 50)

	rows, err := h.useCase.History(user.ID, user.Rol == "admin", limite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener historial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(rows),
		"data":  rows,
	})
}

// Stats handles GET /stats
func (h *IAHandler) Stats(c *gin.Context) {
	user := currentUser(c)

	stats, err := h.useCase.Stats(user.ID, user.Rol == "admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener estadísticas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalInteracciones":           stats.TotalInteracciones,
		"totalTokens":                  stats.TotalTokens,
		"totalCosto":                   fmt.Sprintf("%.4f", stats.TotalCosto),
		"promedioTokensPorInteraccion": stats.PromedioTokens,
		"modelos":                      stats.Modelos,
	})
}
