package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"nexum-inventory-be/internal/mapper"
)

type ListProductsRequest struct {
	Status   string `query:"status"`
	Category string `query:"category"`
	AbcClass string `query:"abc"`
	Search   string `query:"search"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type ProductResponse struct {
	Id              uint            `json:"id"`
	Code            string          `json:"code"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	AbcClass        string          `json:"abc_class"`
	Unit            string          `json:"unit"`
	OnHand          float64         `json:"on_hand"`
	InTransit       float64         `json:"in_transit"`
	Reserved        float64         `json:"reserved"`
	Available       float64         `json:"available"`
	Cmm             float64         `json:"cmm"`
	MaxStock        float64         `json:"max_stock"`
	CoverageDays    float64         `json:"coverage_days"`
	AveragePrice    decimal.Decimal `json:"average_price"`
	Status          string          `json:"status"`
	Location        string          `json:"location"`
	PrimarySupplier string          `json:"primary_supplier"`
	UpdatedAt       *time.Time      `json:"updated_at"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type StatusSummaryResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// ImportProductsRequest carries raw boundary records; each passes through the
// validating decoder before touching storage.
type ImportProductsRequest struct {
	Items []mapper.RawProduct `json:"items" validate:"required,min=1"`
}

type ImportRejection struct {
	Index  int    `json:"index"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// ImportSubstitution reports fields the decoder defaulted for one item.
type ImportSubstitution struct {
	Code   string   `json:"code"`
	Fields []string `json:"fields"`
}

type ImportProductsResponse struct {
	Imported      int                  `json:"imported"`
	Rejected      []ImportRejection    `json:"rejected"`
	Substitutions []ImportSubstitution `json:"substitutions"`
}
