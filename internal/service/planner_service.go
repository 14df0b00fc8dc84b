package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/internal/pkg/mailer"
	"nexum-inventory-be/internal/repository/specification"
	"nexum-inventory-be/internal/repository/unitofwork"
	"nexum-inventory-be/pkg/events"
	pktNats "nexum-inventory-be/pkg/nats"
	"nexum-inventory-be/pkg/planning"

	"github.com/google/uuid"
)

type IPlannerService interface {
	GeneratePlan(ctx context.Context, userId uuid.UUID) (*dto.GeneratePlanResponse, error)
	History(ctx context.Context, req *dto.ListPlansRequest) (*dto.ListPlansResponse, error)
}

type plannerService struct {
	uowFactory     unitofwork.RepositoryFactory
	requestor      planning.Requestor
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	summaryEmailTo string
	criticalCap    int
}

func NewPlannerService(
	uowFactory unitofwork.RepositoryFactory,
	requestor planning.Requestor,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	summaryEmailTo string,
	criticalCap int,
) IPlannerService {
	if criticalCap <= 0 {
		criticalCap = planning.DefaultCriticalCap
	}
	return &plannerService{
		uowFactory:     uowFactory,
		requestor:      requestor,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		summaryEmailTo: summaryEmailTo,
		criticalCap:    criticalCap,
	}
}

func toInventoryRecord(p *entity.Product) planning.InventoryRecord {
	return planning.InventoryRecord{
		Code:      p.Code,
		OnHand:    p.OnHand,
		MaxStock:  p.MaxStock,
		Cmm:       p.Cmm,
		InTransit: p.InTransit,
	}
}

func toInventoryRecords(products []*entity.Product) []planning.InventoryRecord {
	records := make([]planning.InventoryRecord, 0, len(products))
	for _, p := range products {
		records = append(records, toInventoryRecord(p))
	}
	return records
}

func formatPlanSummary(lines []planning.PlanLine) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(fmt.Sprintf("%s: %s (qty %.0f) - %s\n",
			line.Code, line.Action, line.Quantity, line.Justification))
	}
	return strings.TrimRight(b.String(), "\n")
}

// GeneratePlan snapshots the inventory, triages it, and asks the reasoning
// service for one action per critical item. Every invocation is persisted,
// empty and error outcomes included, so the history view reflects what users
// actually saw.
func (s *plannerService) GeneratePlan(ctx context.Context, userId uuid.UUID) (*dto.GeneratePlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	inventory, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	criticalItems := planning.SelectCriticalItems(toInventoryRecords(inventory), s.criticalCap)
	result := s.requestor.RequestPurchasePlan(ctx, criticalItems)

	plan := &entity.GeneratedPlan{
		Id:            uuid.New(),
		RequestedBy:   userId,
		CriticalCount: len(criticalItems),
		CreatedAt:     time.Now(),
	}
	switch {
	case result.IsError():
		plan.Outcome = entity.PlanOutcomeError
		plan.Message = result.Err
		plan.RawResponse = result.RawResponse
	case result.Empty:
		plan.Outcome = entity.PlanOutcomeEmpty
		plan.Message = result.Message
	default:
		plan.Outcome = entity.PlanOutcomeGenerated
		plan.Lines = result.Lines
	}

	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	if plan.Outcome == entity.PlanOutcomeGenerated {
		if s.eventPublisher != nil {
			event := events.NewPlanGeneratedEvent(plan.Id.String(), len(plan.Lines))
			if err := s.eventPublisher.Publish(ctx, event); err != nil {
				fmt.Printf("[WARN] Failed to publish PLAN_GENERATED event: %v\n", err)
			}
		}
		if s.emailService != nil && s.summaryEmailTo != "" {
			summary := formatPlanSummary(plan.Lines)
			go func() {
				if err := s.emailService.SendPlanSummary(s.summaryEmailTo, summary); err != nil {
					fmt.Printf("[WARN] Failed to send plan summary email: %v\n", err)
				}
			}()
		}
	}

	return &dto.GeneratePlanResponse{
		PlanId:        plan.Id,
		Outcome:       string(plan.Outcome),
		CriticalItems: criticalItems,
		Lines:         plan.Lines,
		Message:       plan.Message,
		RawResponse:   plan.RawResponse,
		CreatedAt:     plan.CreatedAt,
	}, nil
}

func (s *plannerService) History(ctx context.Context, req *dto.ListPlansRequest) (*dto.ListPlansResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{}
	if req.Outcome != "" {
		filters = append(filters, specification.ByOutcome{Outcome: req.Outcome})
	}

	total, err := uow.PlanRepository().Count(ctx, filters...)
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
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	plans, err := uow.PlanRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PlanHistoryResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, dto.PlanHistoryResponse{
			Id:            p.Id,
			RequestedBy:   p.RequestedBy,
			Outcome:       string(p.Outcome),
			CriticalCount: p.CriticalCount,
			Lines:         p.Lines,
			Message:       p.Message,
			CreatedAt:     p.CreatedAt,
		})
	}

	return &dto.ListPlansResponse{
		Plans:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
