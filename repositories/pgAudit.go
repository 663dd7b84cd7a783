package repositories

import (
	"robot-server/db"
	"robot-server/entities"
)

type actionLogPgRepository struct {
	db db.Database
}

func NewActionLogPgRepository(database db.Database) ActionLogRepository {
	return &actionLogPgRepository{db: database}
}

func (r *actionLogPgRepository) Create(entry *entities.ActionLog) error {
	return r.db.GetDB().Create(entry).Error
}

type alertPgRepository struct {
	db db.Database
}

func NewAlertPgRepository(database db.Database) AlertRepository {
	return &alertPgRepository{db: database}
}

func (r *alertPgRepository) Create(alert *entities.Alert) error {
	return r.db.GetDB().Create(alert).Error
}
