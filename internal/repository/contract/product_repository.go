package contract

import (
	"context"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpsertByCode inserts or replaces a product keyed by its item code.
	// The boundary import path relies on this instead of Create/Update pairs.
	UpsertByCode(ctx context.Context, product *entity.Product) error

	// CountByStatus groups the snapshot by stock status for the dashboard cards.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
