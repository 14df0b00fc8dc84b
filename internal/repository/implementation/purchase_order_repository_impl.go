package implementation

import (
	"context"
	"errors"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/mapper"
	"nexum-inventory-be/internal/model"
	"nexum-inventory-be/internal/repository/contract"
	"nexum-inventory-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PurchaseOrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PurchaseMapper
}

func NewPurchaseOrderRepository(db *gorm.DB) contract.PurchaseOrderRepository {
	return &PurchaseOrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewPurchaseMapper(),
	}
}

func (r *PurchaseOrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PurchaseOrderRepositoryImpl) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	modelOrder := r.mapper.OrderToModel(order)
	if err := r.db.WithContext(ctx).Create(modelOrder).Error; err != nil {
		return err
	}
	*order = *r.mapper.OrderToEntity(modelOrder)
	return nil
}

func (r *PurchaseOrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PurchaseOrder, error) {
	var modelOrder model.PurchaseOrder
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Lines"), specs...)

	if err := query.First(&modelOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.OrderToEntity(&modelOrder), nil
}

func (r *PurchaseOrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseOrder, error) {
	var modelOrders []*model.PurchaseOrder
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Lines"), specs...)

	if err := query.Find(&modelOrders).Error; err != nil {
		return nil, err
	}

	return r.mapper.OrdersToEntities(modelOrders), nil
}

func (r *PurchaseOrderRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PurchaseOrder{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
