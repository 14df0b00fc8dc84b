package mapper

import (
	"time"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Product{
		Id:              p.Id,
		Code:            p.Code,
		Description:     p.Description,
		Category:        p.Category,
		AbcClass:        p.AbcClass,
		Unit:            p.Unit,
		OnHand:          p.OnHand,
		InTransit:       p.InTransit,
		Reserved:        p.Reserved,
		Cmm:             p.Cmm,
		MaxStock:        p.MaxStock,
		CoverageDays:    p.CoverageDays,
		AveragePrice:    p.AveragePrice,
		Status:          entity.StockStatus(p.Status),
		Location:        p.Location,
		PrimarySupplier: p.PrimarySupplier,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:              p.Id,
		Code:            p.Code,
		Description:     p.Description,
		Category:        p.Category,
		AbcClass:        p.AbcClass,
		Unit:            p.Unit,
		OnHand:          p.OnHand,
		InTransit:       p.InTransit,
		Reserved:        p.Reserved,
		Cmm:             p.Cmm,
		MaxStock:        p.MaxStock,
		CoverageDays:    p.CoverageDays,
		AveragePrice:    p.AveragePrice,
		Status:          string(p.Status),
		Location:        p.Location,
		PrimarySupplier: p.PrimarySupplier,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProductMapper) ToModels(products []*entity.Product) []*model.Product {
	models := make([]*model.Product, len(products))
	for i, p := range products {
		models[i] = m.ToModel(p)
	}
	return models
}
