package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"robot-server/entities"
	"robot-server/repositories"
)

// ChatClient is the slice of the OpenAI client the analysis pipeline uses.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AIUseCase runs the environmental risk analysis: gather the latest ambient
// sensor readings, build a prompt, call the model, persist the interaction.
type AIUseCase struct {
	sensors      repositories.SensorDataRepository
	interactions repositories.AIInteractionRepository
	client       ChatClient
	model        string
}

// NewAIUseCase wires the pipeline. A nil client means no API key is
// configured; Analyze then fails without touching the model.
func NewAIUseCase(sensors repositories.SensorDataRepository, interactions repositories.AIInteractionRepository, client ChatClient) *AIUseCase {
	return &AIUseCase{
		sensors:      sensors,
		interactions: interactions,
		client:       client,
		model:        "gpt-4o-mini",
	}
}

// ErrAINotConfigured is returned when no OpenAI API key was provided.
var ErrAINotConfigured = errors.New("OpenAI API Key no configurada")

// The fixed home sensors whose latest readings feed the prompt.
var sensorDevices = []struct {
	ID     int
	Nombre string
}{
	{2, "Sensor de temperatura"},
	{3, "Sensor de humedad"},
}

// buildSensorContext summarizes the most recent reading of every known
// sensor; sensors with no data are reported as such, not skipped.
func (uc *AIUseCase) buildSensorContext() string {
	contexto := "Datos más recientes de los sensores:\n\n"
	for _, sensor := range sensorDevices {
		reading, err := uc.sensors.LatestByDevice(sensor.ID)
		if err != nil || reading == nil {
			contexto += fmt.Sprintf("%s: sin datos disponibles.\n\n", sensor.Nombre)
			continue
		}
		encoded, err := json.MarshalIndent(reading, "", "  ")
		if err != nil {
			contexto += fmt.Sprintf("%s: sin datos disponibles.\n\n", sensor.Nombre)
			continue
		}
		contexto += fmt.Sprintf("%s:\n%s\n\n", sensor.Nombre, encoded)
	}
	return contexto
}

// AnalysisResult is the model's answer plus the model that produced it.
type AnalysisResult struct {
	Respuesta string
	Modelo    string
}

// Analyze builds the sensor context, asks the model for a risk assessment
// and persists the full interaction.
func (uc *AIUseCase) Analyze(ctx context.Context, userID string) (*AnalysisResult, error) {
	if uc.client == nil {
		return nil, ErrAINotConfigured
	}

	contexto := uc.buildSensorContext()
	prompt := fmt.Sprintf(`Eres un asistente experto en análisis de datos ambientales y robótica.
Analiza la siguiente pregunta y proporciona recomendaciones basadas en buenas prácticas.

¿Debería tomar precauciones en base a estos datos de mi hogar o no hace falta?: %s

Proporciona respuestas claras, concisas y accionables. En la respuesta no incluyas asteriscos, ni numerales, ni guiones`, contexto)

	resp, err := uc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: uc.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error al procesar análisis con IA: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("respuesta vacía del modelo")
	}
	texto := resp.Choices[0].Message.Content

	interaction := &entities.AIInteraction{
		UserID:     userID,
		Prompt:     prompt,
		Response:   texto,
		Model:      uc.model,
		TokensUsed: resp.Usage.TotalTokens,
		Metadata:   `{"tipo_analisis":"general"}`,
	}
	if err := uc.interactions.Create(interaction); err != nil {
		return nil, err
	}

	return &AnalysisResult{Respuesta: texto, Modelo: uc.model}, nil
}

// History lists recent interactions, newest first. Non-admin users only see
// their own rows.
func (uc *AIUseCase) History(userID string, isAdmin bool, limite int) ([]entities.AIInteraction, error) {
	filterUser := userID
	if isAdmin {
		filterUser = ""
	}
	return uc.interactions.GetRecent(filterUser, limite)
}

// UsageStats aggregates token and cost totals over the visible interactions.
type UsageStats struct {
	TotalInteracciones int
	TotalTokens        int
	TotalCosto         float64
	PromedioTokens     int
	Modelos            []string
}

func (uc *AIUseCase) Stats(userID string, isAdmin bool) (*UsageStats, error) {
	filterUser := userID
	if isAdmin {
		filterUser = ""
	}
	rows, err := uc.interactions.GetAllByUser(filterUser)
	if err != nil {
		return nil, err
	}

	stats := &UsageStats{TotalInteracciones: len(rows), Modelos: []string{}}
	seen := map[string]bool{}
	for _, row := range rows {
		stats.TotalTokens += row.TokensUsed
		stats.TotalCosto += row.Costo
		if row.Model != "" && !seen[row.Model] {
			seen[row.Model] = true
			stats.Modelos = append(stats.Modelos, row.Model)
		}
	}
	if len(rows) > 0 {
		stats.PromedioTokens = stats.TotalTokens / len(rows)
	}
	return stats, nil
}
