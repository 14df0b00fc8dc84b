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
	"gorm.io/gorm/clause"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	modelProduct := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(modelProduct).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(modelProduct)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	modelProduct := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Save(modelProduct).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(modelProduct)
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *ProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var modelProduct model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProduct).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelProduct), nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var modelProducts []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProducts).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelProducts), nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepositoryImpl) UpsertByCode(ctx context.Context, product *entity.Product) error {
	modelProduct := r.mapper.ToModel(product)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"description", "category", "abc_class", "unit",
			"on_hand", "in_transit", "reserved", "cmm",
			"max_stock", "coverage_days", "average_price",
			"status", "location", "primary_supplier", "updated_at",
		}),
	}).Create(modelProduct).Error
	if err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(modelProduct)
	return nil
}

func (r *ProductRepositoryImpl) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Total  int64
	}
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
