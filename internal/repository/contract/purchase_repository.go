package contract

import (
	"context"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PurchaseRequestRepository interface {
	Create(ctx context.Context, request *entity.PurchaseRequest) error
	Update(ctx context.Context, request *entity.PurchaseRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PurchaseRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PurchaseOrder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseOrder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
