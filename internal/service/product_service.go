package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/mapper"
	"nexum-inventory-be/internal/repository/specification"
	"nexum-inventory-be/internal/repository/unitofwork"
)

type IProductService interface {
	List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error)
	Show(ctx context.Context, code string) (*dto.ProductResponse, error)
	StatusSummary(ctx context.Context) (*dto.StatusSummaryResponse, error)
	Import(ctx context.Context, req *dto.ImportProductsRequest) (*dto.ImportProductsResponse, error)
}

type productService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewProductService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IProductService {
	return &productService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

const defaultPageSize = 50

func (s *productService) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{}
	if req.Status != "" {
		filters = append(filters, specification.ByStockStatus{Status: req.Status})
	}
	if req.Category != "" {
		filters = append(filters, specification.ByCategory{Category: req.Category})
	}
	if req.AbcClass != "" {
		filters = append(filters, specification.ByAbcClass{AbcClass: req.AbcClass})
	}
	if req.Search != "" {
		filters = append(filters, specification.ProductSearch{Term: req.Search})
	}

	total, err := uow.ProductRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "code"},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	products, err := uow.ProductRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}

	return &dto.ListProductsResponse{
		Products: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *productService) Show(ctx context.Context, code string) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByCode{Code: code})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product not found")
	}

	resp := toProductResponse(product)
	return &resp, nil
}

func (s *productService) StatusSummary(ctx context.Context) (*dto.StatusSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counts, err := uow.ProductRepository().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &dto.StatusSummaryResponse{Counts: counts, Total: total}, nil
}

// Import pushes raw records through the validating decoder. Invalid records
// are rejected individually; one bad row never fails the batch.
func (s *productService) Import(ctx context.Context, req *dto.ImportProductsRequest) (*dto.ImportProductsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp := &dto.ImportProductsResponse{
		Rejected:      []dto.ImportRejection{},
		Substitutions: []dto.ImportSubstitution{},
	}

	for i := range req.Items {
		raw := &req.Items[i]
		decoded, decodeErr := mapper.DecodeProduct(raw)
		if decodeErr != nil {
			resp.Rejected = append(resp.Rejected, dto.ImportRejection{
				Index:  i,
				Code:   decodeErr.Code,
				Reason: decodeErr.Reason,
			})
			continue
		}

		previous, err := uow.ProductRepository().FindOne(ctx, specification.ByCode{Code: decoded.Product.Code})
		if err != nil {
			return nil, err
		}
		previousStatus := ""
		if previous != nil {
			previousStatus = string(previous.Status)
		}

		if err := uow.ProductRepository().UpsertByCode(ctx, decoded.Product); err != nil {
			return nil, err
		}
		resp.Imported++

		if len(decoded.Substitutions) > 0 {
			resp.Substitutions = append(resp.Substitutions, dto.ImportSubstitution{
				Code:   decoded.Product.Code,
				Fields: decoded.Substitutions,
			})
		}

		if string(decoded.Product.Status) != previousStatus {
			s.publishStockChange(ctx, decoded.Product, previousStatus)
		}
	}

	return resp, nil
}

func (s *productService) publishStockChange(ctx context.Context, product *entity.Product, previousStatus string) {
	if s.publisherService == nil {
		return
	}
	msg := dto.StockLevelChangedMessage{
		Code:           product.Code,
		Description:    product.Description,
		Status:         string(product.Status),
		PreviousStatus: previousStatus,
		OnHand:         product.OnHand,
		CoverageDays:   product.CoverageDays,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal stock change message: %v\n", err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish stock change for %s: %v\n", product.Code, err)
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Id:              p.Id,
		Code:            p.Code,
		Description:     p.Description,
		Category:        p.Category,
		AbcClass:        p.AbcClass,
		Unit:            p.Unit,
		OnHand:          p.OnHand,
		InTransit:       p.InTransit,
		Reserved:        p.Reserved,
		Available:       p.AvailableStock(),
		Cmm:             p.Cmm,
		MaxStock:        p.MaxStock,
		CoverageDays:    p.CoverageDays,
		AveragePrice:    p.AveragePrice,
		Status:          string(p.Status),
		Location:        p.Location,
		PrimarySupplier: p.PrimarySupplier,
		UpdatedAt:       p.UpdatedAt,
	}
}
