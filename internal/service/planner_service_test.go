package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/pkg/planning"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequestor struct {
	result planning.PlanResult
	calls  int
	gotLen int
}

func (s *stubRequestor) RequestPurchasePlan(ctx context.Context, items []planning.CriticalItem) planning.PlanResult {
	s.calls++
	s.gotLen = len(items)
	if len(items) == 0 {
		return planning.PlanResult{Empty: true, Message: "nothing to plan"}
	}
	return s.result
}

type fakeMailer struct {
	mu        sync.Mutex
	to        []string
	summaries []string
}

func (m *fakeMailer) SendStockAlert(toEmail, itemCode, itemDescription string, coverageDays float64) error {
	return nil
}

func (m *fakeMailer) SendPlanSummary(toEmail, planText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.to = append(m.to, toEmail)
	m.summaries = append(m.summaries, planText)
	return nil
}

func (m *fakeMailer) summaryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.summaries)
}

func demandProduct(code string, onHand, cmm float64) *entity.Product {
	return &entity.Product{
		Code:     code,
		OnHand:   onHand,
		Cmm:      cmm,
		MaxStock: cmm * 3,
	}
}

func TestToInventoryRecordsFeedTriage(t *testing.T) {
	products := []*entity.Product{
		{Code: "PRD-001", OnHand: 4, MaxStock: 40, Cmm: 11, InTransit: 2},
		{Code: "PRD-002", OnHand: 80, MaxStock: 100, Cmm: 3},
	}

	records := toInventoryRecords(products)
	require.Len(t, records, 2)
	assert.Equal(t, planning.InventoryRecord{
		Code: "PRD-001", OnHand: 4, MaxStock: 40, Cmm: 11, InTransit: 2,
	}, records[0])

	items := planning.SelectCriticalItems(records, 5)
	require.Len(t, items, 1)
	assert.Equal(t, "PRD-001", items[0].Code)
	assert.Equal(t, 16.0, items[0].OrderQuantity) // 11*2 - 4 - 2
}

func TestGeneratePlanPersistsGeneratedOutcome(t *testing.T) {
	factory, planRepo := newFakeFactory([]*entity.Product{
		demandProduct("PRD-001", 2, 10),
		demandProduct("PRD-002", 100, 1),
	})
	requestor := &stubRequestor{
		result: planning.PlanResult{Lines: []planning.PlanLine{
			{Code: "PRD-001", Action: planning.ActionIssuePurchaseOrder, Quantity: 18, Justification: "stockout risk"},
		}},
	}

	svc := NewPlannerService(factory, requestor, nil, nil, "", 5)
	userId := uuid.New()

	res, err := svc.GeneratePlan(context.Background(), userId)
	require.NoError(t, err)

	assert.Equal(t, string(entity.PlanOutcomeGenerated), res.Outcome)
	assert.Len(t, res.Lines, 1)
	assert.Equal(t, 1, requestor.calls)
	// Only PRD-001 clears the order quantity threshold.
	assert.Equal(t, 1, requestor.gotLen)

	require.Len(t, planRepo.created, 1)
	assert.Equal(t, entity.PlanOutcomeGenerated, planRepo.created[0].Outcome)
	assert.Equal(t, userId, planRepo.created[0].RequestedBy)
	assert.Equal(t, 1, planRepo.created[0].CriticalCount)
}

func TestGeneratePlanMailsSummaryOnGeneratedOutcome(t *testing.T) {
	factory, _ := newFakeFactory([]*entity.Product{
		demandProduct("PRD-001", 2, 10),
	})
	requestor := &stubRequestor{
		result: planning.PlanResult{Lines: []planning.PlanLine{
			{Code: "PRD-001", Action: planning.ActionIssuePurchaseOrder, Quantity: 18, Justification: "stockout risk"},
		}},
	}
	mail := &fakeMailer{}

	svc := NewPlannerService(factory, requestor, nil, mail, "ops@nexum.local", 5)

	_, err := svc.GeneratePlan(context.Background(), uuid.New())
	require.NoError(t, err)

	require.Eventually(t, func() bool { return mail.summaryCount() == 1 },
		time.Second, 5*time.Millisecond)

	mail.mu.Lock()
	defer mail.mu.Unlock()
	assert.Equal(t, "ops@nexum.local", mail.to[0])
	assert.Contains(t, mail.summaries[0], "PRD-001: ISSUE_PURCHASE_ORDER (qty 18) - stockout risk")
}

func TestGeneratePlanSkipsSummaryMailOnEmptyOutcome(t *testing.T) {
	factory, _ := newFakeFactory([]*entity.Product{
		demandProduct("PRD-002", 100, 1), // fully stocked
	})
	mail := &fakeMailer{}

	svc := NewPlannerService(factory, &stubRequestor{}, nil, mail, "ops@nexum.local", 5)

	_, err := svc.GeneratePlan(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Never(t, func() bool { return mail.summaryCount() > 0 },
		100*time.Millisecond, 10*time.Millisecond)
}

func TestGeneratePlanPersistsEmptyOutcome(t *testing.T) {
	factory, planRepo := newFakeFactory([]*entity.Product{
		demandProduct("PRD-002", 100, 1), // fully stocked
	})
	requestor := &stubRequestor{}

	svc := NewPlannerService(factory, requestor, nil, nil, "", 5)

	res, err := svc.GeneratePlan(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, string(entity.PlanOutcomeEmpty), res.Outcome)
	assert.Empty(t, res.Lines)
	assert.NotEmpty(t, res.Message)

	require.Len(t, planRepo.created, 1)
	assert.Equal(t, entity.PlanOutcomeEmpty, planRepo.created[0].Outcome)
	assert.Equal(t, 0, planRepo.created[0].CriticalCount)
}

func TestGeneratePlanPersistsErrorOutcomeWithRawResponse(t *testing.T) {
	factory, planRepo := newFakeFactory([]*entity.Product{
		demandProduct("PRD-001", 2, 10),
	})
	requestor := &stubRequestor{
		result: planning.PlanResult{
			Err:         "reasoning service response was not valid JSON",
			RawResponse: "I think you should buy more of everything",
		},
	}

	svc := NewPlannerService(factory, requestor, nil, nil, "", 5)

	res, err := svc.GeneratePlan(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, string(entity.PlanOutcomeError), res.Outcome)
	assert.Equal(t, "I think you should buy more of everything", res.RawResponse)

	require.Len(t, planRepo.created, 1)
	assert.Equal(t, entity.PlanOutcomeError, planRepo.created[0].Outcome)
	assert.Equal(t, "I think you should buy more of everything", planRepo.created[0].RawResponse)
}
