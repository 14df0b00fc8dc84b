package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseRequest struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequesterId     uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemCode        string    `gorm:"type:varchar(50);not null;index"`
	ItemDescription string    `gorm:"type:varchar(255)"`
	Quantity        float64   `gorm:"not null"`
	Urgency         string    `gorm:"type:varchar(10);not null;default:'media'"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	DecidedAt       *time.Time
}

func (PurchaseRequest) TableName() string {
	return "purchase_requests"
}

type PurchaseOrder struct {
	Id          uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber string              `gorm:"type:varchar(50);uniqueIndex;not null"`
	Supplier    string              `gorm:"type:varchar(255);not null"`
	Status      string              `gorm:"type:varchar(20);not null;default:'open';index"`
	Lines       []PurchaseOrderLine `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
	IssuedAt    time.Time           `gorm:"not null"`
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

type PurchaseOrderLine struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemCode  string          `gorm:"type:varchar(50);not null;index"`
	Quantity  decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (PurchaseOrderLine) TableName() string {
	return "purchase_order_lines"
}
