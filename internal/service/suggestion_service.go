package service

import (
	"context"
	"sort"

	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/repository/specification"
	"nexum-inventory-be/internal/repository/unitofwork"
	"nexum-inventory-be/pkg/planning"

	"github.com/shopspring/decimal"
)

type ISuggestionService interface {
	List(ctx context.Context) (*dto.ListSuggestionsResponse, error)
}

type suggestionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSuggestionService(uowFactory unitofwork.RepositoryFactory) ISuggestionService {
	return &suggestionService{uowFactory: uowFactory}
}

// Coverage thresholds in days. Below critical the item cannot wait for the
// next planning cycle.
const (
	criticalCoverageDays  = 15.0
	attentionCoverageDays = 30.0
)

func suggestionPriority(coverageDays float64) string {
	switch {
	case coverageDays < criticalCoverageDays:
		return string(entity.UrgencyHigh)
	case coverageDays < attentionCoverageDays:
		return string(entity.UrgencyMedium)
	default:
		return string(entity.UrgencyLow)
	}
}

// List derives reorder suggestions for every item with demand and a positive
// order quantity. This is the deterministic counterpart of the reasoning
// plan: same quantity formula, no external call.
func (s *suggestionService) List(ctx context.Context) (*dto.ListSuggestionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx, specification.WithDemand{})
	if err != nil {
		return nil, err
	}

	suggestions := []dto.SuggestionResponse{}
	totalValue := decimal.Zero

	for _, p := range products {
		qty := planning.OrderQuantity(toInventoryRecord(p))
		if qty <= 0 {
			continue
		}

		value := p.AveragePrice.Mul(decimal.NewFromFloat(qty))
		totalValue = totalValue.Add(value)

		suggestions = append(suggestions, dto.SuggestionResponse{
			Code:           p.Code,
			Description:    p.Description,
			Priority:       suggestionPriority(p.CoverageDays),
			OrderQuantity:  qty,
			CoverageDays:   p.CoverageDays,
			EstimatedValue: value,
		})
	}

	// Tightest coverage first.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].CoverageDays < suggestions[j].CoverageDays
	})

	return &dto.ListSuggestionsResponse{
		Suggestions: suggestions,
		TotalValue:  totalValue,
	}, nil
}
