package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockStatus string

const (
	StockStatusCritical  StockStatus = "CRITICO"
	StockStatusAttention StockStatus = "ATENCAO"
	StockStatusNormal    StockStatus = "NORMAL"
	StockStatusExcess    StockStatus = "EXCESSO"
)

// Product is one stocked inventory item as served by the products API.
// Quantities are snapshot values; the planning core treats them as immutable
// for the duration of one triage + plan call.
type Product struct {
	Id              uint
	Code            string
	Description     string
	Category        string
	AbcClass        string
	Unit            string
	OnHand          float64
	InTransit       float64
	Reserved        float64
	Cmm             float64 // average monthly consumption
	MaxStock        float64
	CoverageDays    float64
	AveragePrice    decimal.Decimal
	Status          StockStatus
	Location        string
	PrimarySupplier string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// AvailableStock is on-hand net of reservations, clamped at zero for display.
func (p *Product) AvailableStock() float64 {
	avail := p.OnHand - p.Reserved
	if avail < 0 {
		return 0
	}
	return avail
}
