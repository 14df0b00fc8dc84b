package implementation

import (
	"context"
	"errors"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/mapper"
	"nexum-inventory-be/internal/model"
	"nexum-inventory-be/internal/repository/contract"
	"nexum-inventory-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PurchaseMapper
}

func NewPurchaseRequestRepository(db *gorm.DB) contract.PurchaseRequestRepository {
	return &PurchaseRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewPurchaseMapper(),
	}
}

func (r *PurchaseRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PurchaseRequestRepositoryImpl) Create(ctx context.Context, request *entity.PurchaseRequest) error {
	modelRequest := r.mapper.RequestToModel(request)
	if err := r.db.WithContext(ctx).Create(modelRequest).Error; err != nil {
		return err
	}
	*request = *r.mapper.RequestToEntity(modelRequest)
	return nil
}

func (r *PurchaseRequestRepositoryImpl) Update(ctx context.Context, request *entity.PurchaseRequest) error {
	modelRequest := r.mapper.RequestToModel(request)
	if err := r.db.WithContext(ctx).Save(modelRequest).Error; err != nil {
		return err
	}
	*request = *r.mapper.RequestToEntity(modelRequest)
	return nil
}

func (r *PurchaseRequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PurchaseRequest{}).Error
}

func (r *PurchaseRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PurchaseRequest, error) {
	var modelRequest model.PurchaseRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelRequest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.RequestToEntity(&modelRequest), nil
}

func (r *PurchaseRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseRequest, error) {
	var modelRequests []*model.PurchaseRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRequests).Error; err != nil {
		return nil, err
	}

	return r.mapper.RequestsToEntities(modelRequests), nil
}

func (r *PurchaseRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PurchaseRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
