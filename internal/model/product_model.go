package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	Id              uint            `gorm:"primaryKey;autoIncrement"`
	Code            string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description     string          `gorm:"type:varchar(255);not null"`
	Category        string          `gorm:"type:varchar(100);index"`
	AbcClass        string          `gorm:"type:varchar(1);default:''"`
	Unit            string          `gorm:"type:varchar(20)"`
	OnHand          float64         `gorm:"not null;default:0"`
	InTransit       float64         `gorm:"not null;default:0"`
	Reserved        float64         `gorm:"not null;default:0"`
	Cmm             float64         `gorm:"not null;default:0"`
	MaxStock        float64         `gorm:"not null;default:0"`
	CoverageDays    float64         `gorm:"not null;default:0"`
	AveragePrice    decimal.Decimal `gorm:"type:numeric(14,4);default:0"`
	Status          string          `gorm:"type:varchar(20);index"`
	Location        string          `gorm:"type:varchar(100)"`
	PrimarySupplier string          `gorm:"type:varchar(255)"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt  `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
