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

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlanMapper
}

func NewPlanRepository(db *gorm.DB) contract.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlanMapper(),
	}
}

func (r *PlanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *entity.GeneratedPlan) error {
	modelPlan, err := r.mapper.ToModel(plan)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(modelPlan).Error; err != nil {
		return err
	}
	*plan = *r.mapper.ToEntity(modelPlan)
	return nil
}

func (r *PlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedPlan, error) {
	var modelPlan model.GeneratedPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPlan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPlan), nil
}

func (r *PlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedPlan, error) {
	var modelPlans []*model.GeneratedPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPlans).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelPlans), nil
}

func (r *PlanRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GeneratedPlan{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
