package services

import (
	"context"
	"log"
	"time"

	"robot-server/usecases"
)

// Analyzer runs the environmental risk analysis on a schedule, mirroring
// the on-demand /analizar endpoint. Interactions from scheduled runs are
// recorded under the system user.
type Analyzer struct {
	useCase  *usecases.AIUseCase
	interval time.Duration
}

const systemUserID = "system"

func NewAnalyzer(useCase *usecases.AIUseCase) *Analyzer {
	return &Analyzer{
		useCase:  useCase,
		interval: time.Hour,
	}
}

// Start launches the hourly analysis loop until ctx is cancelled.
func (a *Analyzer) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.runOnce(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (a *Analyzer) runOnce(ctx context.Context) {
	log.Println("Ejecutando análisis IA automático...")
	if _, err := a.useCase.Analyze(ctx, systemUserID); err != nil {
		log.Printf("scheduled analysis failed: %v", err)
	}
}
