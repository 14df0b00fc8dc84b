package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GeneratedPlan struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestedBy   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Outcome       string         `gorm:"type:varchar(20);not null;index"`
	CriticalCount int            `gorm:"not null;default:0"`
	Lines         datatypes.JSON `gorm:"type:jsonb"`
	Message       string         `gorm:"type:text"`
	RawResponse   string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
}

func (GeneratedPlan) TableName() string {
	return "generated_plans"
}
