package dto

import "github.com/shopspring/decimal"

// SuggestionResponse is one reorder suggestion derived from coverage and
// demand, independent of the reasoning service.
type SuggestionResponse struct {
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	Priority       string          `json:"priority"` // "alta" | "media" | "baixa"
	OrderQuantity  float64         `json:"order_quantity"`
	CoverageDays   float64         `json:"coverage_days"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
}

type ListSuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
	TotalValue  decimal.Decimal      `json:"total_value"`
}
