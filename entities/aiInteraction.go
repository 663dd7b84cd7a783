package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AIInteraction records one prompt/response exchange with the language model.
type AIInteraction struct {
	ID         string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID     string  `gorm:"index" json:"user_id"`
	Prompt     string  `gorm:"type:text" json:"prompt"`
	Response   string  `gorm:"type:text" json:"response"`
	Model      string  `json:"model"`
	TokensUsed int     `json:"tokens_used"`
	Costo      float64 `json:"costo"`
	Metadata   string  `gorm:"type:text" json:"metadata"`
	CreatedAt  string  `gorm:"index" json:"created_at"`
}

func (AIInteraction) TableName() string { return "ai_interactions" }

func (i *AIInteraction) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	i.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}
