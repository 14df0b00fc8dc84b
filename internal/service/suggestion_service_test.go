package service

import (
	"context"
	"testing"

	"nexum-inventory-be/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionPriority(t *testing.T) {
	tests := []struct {
		coverageDays float64
		want         string
	}{
		{5, "alta"},
		{14.9, "alta"},
		{15, "media"},
		{29.9, "media"},
		{30, "baixa"},
		{365, "baixa"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, suggestionPriority(tt.coverageDays), "coverage %v", tt.coverageDays)
	}
}

func TestSuggestionListOrdersByCoverageAndValues(t *testing.T) {
	factory, _ := newFakeFactory([]*entity.Product{
		{
			Code: "PRD-B", Description: "Bearing", OnHand: 10, Cmm: 10, MaxStock: 60,
			CoverageDays: 30, AveragePrice: decimal.NewFromFloat(10.00),
		},
		{
			Code: "PRD-A", Description: "Seal kit", OnHand: 2, Cmm: 12, MaxStock: 40,
			CoverageDays: 5, AveragePrice: decimal.NewFromFloat(2.50),
		},
		{
			// fully stocked, no suggestion
			Code: "PRD-C", Description: "V-belt", OnHand: 100, Cmm: 4, MaxStock: 50,
			CoverageDays: 450, AveragePrice: decimal.NewFromFloat(22.75),
		},
	})

	svc := NewSuggestionService(factory)

	res, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 2)

	// Tightest coverage first.
	assert.Equal(t, "PRD-A", res.Suggestions[0].Code)
	assert.Equal(t, "alta", res.Suggestions[0].Priority)
	assert.Equal(t, "PRD-B", res.Suggestions[1].Code)

	// PRD-A: max(0, 12*2 - 2 - 0) = 22 units at 2.50 = 55.00
	assert.InDelta(t, 22, res.Suggestions[0].OrderQuantity, 1e-9)
	assert.True(t, res.Suggestions[0].EstimatedValue.Equal(decimal.NewFromFloat(55.00)),
		"got %s", res.Suggestions[0].EstimatedValue)

	// PRD-B: max(0, 10*2 - 10 - 0) = 10 units at 10.00 = 100.00, total 155.00
	assert.True(t, res.TotalValue.Equal(decimal.NewFromFloat(155.00)), "got %s", res.TotalValue)
}
