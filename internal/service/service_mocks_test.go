package service

import (
	"context"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/repository/contract"
	"nexum-inventory-be/internal/repository/specification"
	"nexum-inventory-be/internal/repository/unitofwork"
)

// fakeUowFactory hands out a single shared unit of work so tests can inspect
// what the service persisted.
type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	products *fakeProductRepo
	plans    *fakePlanRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository { return nil }
func (u *fakeUow) ProductRepository() contract.ProductRepository {
	return u.products
}
func (u *fakeUow) PurchaseRequestRepository() contract.PurchaseRequestRepository { return nil }
func (u *fakeUow) PurchaseOrderRepository() contract.PurchaseOrderRepository     { return nil }
func (u *fakeUow) PlanRepository() contract.PlanRepository {
	return u.plans
}
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository { return nil }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository { return nil }

type fakeProductRepo struct {
	products []*entity.Product
	err      error
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error { return nil }
func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(ctx context.Context, id uint) error                 { return nil }
func (r *fakeProductRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	if len(r.products) == 0 {
		return nil, r.err
	}
	return r.products[0], r.err
}
func (r *fakeProductRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	return r.products, r.err
}
func (r *fakeProductRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.products)), r.err
}
func (r *fakeProductRepo) UpsertByCode(ctx context.Context, product *entity.Product) error {
	return nil
}
func (r *fakeProductRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

type fakePlanRepo struct {
	created []*entity.GeneratedPlan
	err     error
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.GeneratedPlan) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, plan)
	return nil
}
func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedPlan, error) {
	return nil, nil
}
func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedPlan, error) {
	return r.created, nil
}
func (r *fakePlanRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

func newFakeFactory(products []*entity.Product) (*fakeUowFactory, *fakePlanRepo) {
	planRepo := &fakePlanRepo{}
	return &fakeUowFactory{
		uow: &fakeUow{
			products: &fakeProductRepo{products: products},
			plans:    planRepo,
		},
	}, planRepo
}
