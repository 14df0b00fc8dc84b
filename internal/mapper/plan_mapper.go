package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/model"
	"nexum-inventory-be/pkg/planning"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.GeneratedPlan) *entity.GeneratedPlan {
	if p == nil {
		return nil
	}

	var lines []planning.PlanLine
	if len(p.Lines) > 0 {
		// A persisted plan was parse-checked before storage; a decode failure
		// here means the row was tampered with, surface an empty line set.
		_ = json.Unmarshal(p.Lines, &lines)
	}

	return &entity.GeneratedPlan{
		Id:            p.Id,
		RequestedBy:   p.RequestedBy,
		Outcome:       entity.PlanOutcome(p.Outcome),
		CriticalCount: p.CriticalCount,
		Lines:         lines,
		Message:       p.Message,
		RawResponse:   p.RawResponse,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.GeneratedPlan) (*model.GeneratedPlan, error) {
	if p == nil {
		return nil, nil
	}

	var lines datatypes.JSON
	if len(p.Lines) > 0 {
		raw, err := json.Marshal(p.Lines)
		if err != nil {
			return nil, err
		}
		lines = datatypes.JSON(raw)
	}

	return &model.GeneratedPlan{
		Id:            p.Id,
		RequestedBy:   p.RequestedBy,
		Outcome:       string(p.Outcome),
		CriticalCount: p.CriticalCount,
		Lines:         lines,
		Message:       p.Message,
		RawResponse:   p.RawResponse,
		CreatedAt:     p.CreatedAt,
	}, nil
}

func (m *PlanMapper) ToEntities(plans []*model.GeneratedPlan) []*entity.GeneratedPlan {
	entities := make([]*entity.GeneratedPlan, len(plans))
	for i, p := range plans {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
