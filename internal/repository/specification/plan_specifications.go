package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByOutcome struct {
	Outcome string
}

func (s ByOutcome) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("outcome = ?", s.Outcome)
}

type PlanRequestedBy struct {
	UserID uuid.UUID
}

func (s PlanRequestedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("requested_by = ?", s.UserID)
}
