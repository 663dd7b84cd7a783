package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionLog is a write-once audit record of an operator action. Best effort:
// losing one must never fail the action it describes.
type ActionLog struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string `gorm:"index" json:"user_id"`
	Accion      string `json:"accion"`
	Descripcion string `json:"descripcion"`
	IPAddress   string `json:"ip_address"`
	UserAgent   string `json:"user_agent"`
	CreatedAt   string `json:"created_at"`
}

func (ActionLog) TableName() string { return "logs" }

func (l *ActionLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	l.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return
}
