package contract

import (
	"context"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/repository/specification"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.GeneratedPlan) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
