package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePurchaseRequestRequest struct {
	ItemCode        string  `json:"item_code" validate:"required"`
	ItemDescription string  `json:"item_description"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	Urgency         string  `json:"urgency" validate:"required,oneof=alta media baixa"`
	Notes           string  `json:"notes"`
}

type PurchaseRequestResponse struct {
	Id              uuid.UUID  `json:"id"`
	RequesterId     uuid.UUID  `json:"requester_id"`
	ItemCode        string     `json:"item_code"`
	ItemDescription string     `json:"item_description"`
	Quantity        float64    `json:"quantity"`
	Urgency         string     `json:"urgency"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	DecidedAt       *time.Time `json:"decided_at"`
}

type ListPurchaseRequestsRequest struct {
	Status  string `query:"status"`
	Urgency string `query:"urgency"`
}

type DecideRequestRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

type PurchaseOrderLineResponse struct {
	ItemCode  string          `json:"item_code"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

type PurchaseOrderResponse struct {
	Id          uuid.UUID                   `json:"id"`
	OrderNumber string                      `json:"order_number"`
	Supplier    string                      `json:"supplier"`
	Status      string                      `json:"status"`
	Lines       []PurchaseOrderLineResponse `json:"lines"`
	Total       decimal.Decimal             `json:"total"`
	IssuedAt    time.Time                   `json:"issued_at"`
	DeliveredAt *time.Time                  `json:"delivered_at"`
}

type ListPurchaseOrdersRequest struct {
	Status   string `query:"status"`
	Supplier string `query:"supplier"`
}
