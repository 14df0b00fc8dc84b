package dto

import (
	"time"

	"github.com/google/uuid"

	"nexum-inventory-be/pkg/planning"
)

type GeneratePlanResponse struct {
	PlanId        uuid.UUID               `json:"plan_id"`
	Outcome       string                  `json:"outcome"` // "generated" | "empty" | "error"
	CriticalItems []planning.CriticalItem `json:"critical_items"`
	Lines         []planning.PlanLine     `json:"lines,omitempty"`
	Message       string                  `json:"message,omitempty"`
	RawResponse   string                  `json:"raw_response,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

type ListPlansRequest struct {
	Outcome  string `query:"outcome"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type PlanHistoryResponse struct {
	Id            uuid.UUID           `json:"id"`
	RequestedBy   uuid.UUID           `json:"requested_by"`
	Outcome       string              `json:"outcome"`
	CriticalCount int                 `json:"critical_count"`
	Lines         []planning.PlanLine `json:"lines,omitempty"`
	Message       string              `json:"message,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

type ListPlansResponse struct {
	Plans    []PlanHistoryResponse `json:"plans"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}
