package unitofwork

import (
	"context"

	"nexum-inventory-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	PurchaseRequestRepository() contract.PurchaseRequestRepository
	PurchaseOrderRepository() contract.PurchaseOrderRepository
	PlanRepository() contract.PlanRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
