package mapper

import (
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/model"
)

type PurchaseMapper struct{}

func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{}
}

func (m *PurchaseMapper) RequestToEntity(r *model.PurchaseRequest) *entity.PurchaseRequest {
	if r == nil {
		return nil
	}
	return &entity.PurchaseRequest{
		Id:              r.Id,
		RequesterId:     r.RequesterId,
		ItemCode:        r.ItemCode,
		ItemDescription: r.ItemDescription,
		Quantity:        r.Quantity,
		Urgency:         entity.RequestUrgency(r.Urgency),
		Status:          entity.RequestStatus(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		DecidedAt:       r.DecidedAt,
	}
}

func (m *PurchaseMapper) RequestToModel(r *entity.PurchaseRequest) *model.PurchaseRequest {
	if r == nil {
		return nil
	}
	return &model.PurchaseRequest{
		Id:              r.Id,
		RequesterId:     r.RequesterId,
		ItemCode:        r.ItemCode,
		ItemDescription: r.ItemDescription,
		Quantity:        r.Quantity,
		Urgency:         string(r.Urgency),
		Status:          string(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		DecidedAt:       r.DecidedAt,
	}
}

func (m *PurchaseMapper) RequestsToEntities(requests []*model.PurchaseRequest) []*entity.PurchaseRequest {
	entities := make([]*entity.PurchaseRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.RequestToEntity(r)
	}
	return entities
}

func (m *PurchaseMapper) OrderToEntity(o *model.PurchaseOrder) *entity.PurchaseOrder {
	if o == nil {
		return nil
	}
	lines := make([]entity.PurchaseOrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = entity.PurchaseOrderLine{
			Id:        l.Id,
			OrderId:   l.OrderId,
			ItemCode:  l.ItemCode,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return &entity.PurchaseOrder{
		Id:          o.Id,
		OrderNumber: o.OrderNumber,
		Supplier:    o.Supplier,
		Status:      entity.OrderStatus(o.Status),
		Lines:       lines,
		IssuedAt:    o.IssuedAt,
		DeliveredAt: o.DeliveredAt,
	}
}

func (m *PurchaseMapper) OrderToModel(o *entity.PurchaseOrder) *model.PurchaseOrder {
	if o == nil {
		return nil
	}
	lines := make([]model.PurchaseOrderLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = model.PurchaseOrderLine{
			Id:        l.Id,
			OrderId:   l.OrderId,
			ItemCode:  l.ItemCode,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	return &model.PurchaseOrder{
		Id:          o.Id,
		OrderNumber: o.OrderNumber,
		Supplier:    o.Supplier,
		Status:      string(o.Status),
		Lines:       lines,
		IssuedAt:    o.IssuedAt,
		DeliveredAt: o.DeliveredAt,
	}
}

func (m *PurchaseMapper) OrdersToEntities(orders []*model.PurchaseOrder) []*entity.PurchaseOrder {
	entities := make([]*entity.PurchaseOrder, len(orders))
	for i, o := range orders {
		entities[i] = m.OrderToEntity(o)
	}
	return entities
}
