package repositories

import (
	"robot-server/db"
	"robot-server/entities"
)

type aiInteractionPgRepository struct {
	db db.Database
}

func NewAIInteractionPgRepository(database db.Database) AIInteractionRepository {
	return &aiInteractionPgRepository{db: database}
}

func (r *aiInteractionPgRepository) Create(interaction *entities.AIInteraction) error {
	return r.db.GetDB().Create(interaction).Error
}

func (r *aiInteractionPgRepository) GetRecent(userID string, limit int) ([]entities.AIInteraction, error) {
	var interactions []entities.AIInteraction
	q := r.db.GetDB().Order("created_at DESC").Limit(limit)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Find(&interactions).Error
	return interactions, err
}

func (r *aiInteractionPgRepository) GetAllByUser(userID string) ([]entities.AIInteraction, error) {
	var interactions []entities.AIInteraction
	q := r.db.GetDB()
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	err := q.Find(&interactions).Error
	return interactions, err
}
