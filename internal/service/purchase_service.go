package service

import (
	"context"
	"errors"
	"time"

	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/repository/specification"
	"nexum-inventory-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPurchaseService interface {
	CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreatePurchaseRequestRequest) (*dto.PurchaseRequestResponse, error)
	ListRequests(ctx context.Context, req *dto.ListPurchaseRequestsRequest) ([]dto.PurchaseRequestResponse, error)
	DecideRequest(ctx context.Context, id uuid.UUID, req *dto.DecideRequestRequest) (*dto.PurchaseRequestResponse, error)
	ListOrders(ctx context.Context, req *dto.ListPurchaseOrdersRequest) ([]dto.PurchaseOrderResponse, error)
}

type purchaseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPurchaseService(uowFactory unitofwork.RepositoryFactory) IPurchaseService {
	return &purchaseService{uowFactory: uowFactory}
}

func (s *purchaseService) CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreatePurchaseRequestRequest) (*dto.PurchaseRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The item must exist in the snapshot; free-text codes breed orphan requests.
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByCode{Code: req.ItemCode})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("unknown item code")
	}

	description := req.ItemDescription
	if description == "" {
		description = product.Description
	}

	request := &entity.PurchaseRequest{
		Id:              uuid.New(),
		RequesterId:     userId,
		ItemCode:        req.ItemCode,
		ItemDescription: description,
		Quantity:        req.Quantity,
		Urgency:         entity.RequestUrgency(req.Urgency),
		Status:          entity.RequestStatusPending,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}

	if err := uow.PurchaseRequestRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	resp := toRequestResponse(request)
	return &resp, nil
}

func (s *purchaseService) ListRequests(ctx context.Context, req *dto.ListPurchaseRequestsRequest) ([]dto.PurchaseRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if req.Status != "" {
		specs = append(specs, specification.ByRequestStatus{Status: req.Status})
	}
	if req.Urgency != "" {
		specs = append(specs, specification.ByUrgency{Urgency: req.Urgency})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	requests, err := uow.PurchaseRequestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PurchaseRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, toRequestResponse(r))
	}
	return responses, nil
}

func (s *purchaseService) DecideRequest(ctx context.Context, id uuid.UUID, req *dto.DecideRequestRequest) (*dto.PurchaseRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.PurchaseRequestRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, errors.New("purchase request not found")
	}
	if request.Status != entity.RequestStatusPending {
		return nil, errors.New("purchase request already decided")
	}

	now := time.Now()
	request.Status = entity.RequestStatus(req.Decision)
	request.DecidedAt = &now

	if err := uow.PurchaseRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	resp := toRequestResponse(request)
	return &resp, nil
}

func (s *purchaseService) ListOrders(ctx context.Context, req *dto.ListPurchaseOrdersRequest) ([]dto.PurchaseOrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if req.Status != "" {
		specs = append(specs, specification.ByOrderStatus{Status: req.Status})
	}
	if req.Supplier != "" {
		specs = append(specs, specification.BySupplier{Supplier: req.Supplier})
	}
	specs = append(specs, specification.OrderBy{Field: "issued_at", Desc: true})

	orders, err := uow.PurchaseOrderRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses, nil
}

func toRequestResponse(r *entity.PurchaseRequest) dto.PurchaseRequestResponse {
	return dto.PurchaseRequestResponse{
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

func toOrderResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	lines := make([]dto.PurchaseOrderLineResponse, 0, len(o.Lines))
	for i := range o.Lines {
		line := &o.Lines[i]
		lines = append(lines, dto.PurchaseOrderLineResponse{
			ItemCode:  line.ItemCode,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total(),
		})
	}
	return dto.PurchaseOrderResponse{
		Id:          o.Id,
		OrderNumber: o.OrderNumber,
		Supplier:    o.Supplier,
		Status:      string(o.Status),
		Lines:       lines,
		Total:       o.Total(),
		IssuedAt:    o.IssuedAt,
		DeliveredAt: o.DeliveredAt,
	}
}
