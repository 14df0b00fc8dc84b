package service

import (
	"testing"

	"nexum-inventory-be/internal/constant"
	"nexum-inventory-be/internal/dto"
	"nexum-inventory-be/internal/entity"
	"nexum-inventory-be/pkg/planning"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name string
		chat string
		want string
	}{
		{"generate plan english", "Please generate purchase plan for this week", constant.ChatIntentPlan},
		{"purchase plan phrasing", "can you build a purchase plan?", constant.ChatIntentPlan},
		{"portuguese plan", "gerar plano de compra", constant.ChatIntentPlan},
		{"critical items", "show me the critical items", constant.ChatIntentCritical},
		{"portuguese critical", "quais itens estão em estoque crítico?", constant.ChatIntentCritical},
		{"unrelated", "what's the weather like?", constant.ChatIntentGuidance},
		{"empty", "", constant.ChatIntentGuidance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectIntent(tt.chat))
		})
	}
}

func TestFormatPlanReply(t *testing.T) {
	t.Run("generated plan lists actions", func(t *testing.T) {
		reply := formatPlanReply(&dto.GeneratePlanResponse{
			Outcome: string(entity.PlanOutcomeGenerated),
			Lines: []planning.PlanLine{
				{Code: "PRD-001", Action: planning.ActionIssuePurchaseOrder, Quantity: 18, Justification: "stockout in 10 days"},
				{Code: "PRD-003", Action: planning.ActionMonitor, Quantity: 0, Justification: "stable"},
			},
		})
		assert.Contains(t, reply, "2 action(s)")
		assert.Contains(t, reply, "PRD-001: ISSUE_PURCHASE_ORDER (qty 18) - stockout in 10 days")
		assert.Contains(t, reply, "PRD-003: MONITOR")
	})

	t.Run("empty outcome passes message through", func(t *testing.T) {
		reply := formatPlanReply(&dto.GeneratePlanResponse{
			Outcome: string(entity.PlanOutcomeEmpty),
			Message: "All monitored items are at healthy stock levels.",
		})
		assert.Equal(t, "All monitored items are at healthy stock levels.", reply)
	})

	t.Run("error outcome is explained", func(t *testing.T) {
		reply := formatPlanReply(&dto.GeneratePlanResponse{
			Outcome: string(entity.PlanOutcomeError),
			Message: "reasoning service unavailable",
		})
		assert.Contains(t, reply, "could not complete")
		assert.Contains(t, reply, "reasoning service unavailable")
	})
}

func TestFormatCriticalReply(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, constant.ChatNoCriticalItemsMessage, formatCriticalReply(nil))
	})

	t.Run("lists items", func(t *testing.T) {
		reply := formatCriticalReply([]planning.CriticalItem{
			{Code: "PRD-001", OnHand: 4, Cmm: 12, OrderQuantity: 20},
		})
		assert.Contains(t, reply, "1 item(s)")
		assert.Contains(t, reply, "PRD-001")
		assert.Contains(t, reply, "order 20")
	})
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", truncateTitle("  short  "))

	long := "this message is deliberately much longer than the sixty character session title cap"
	got := truncateTitle(long)
	assert.Len(t, got, 63) // 60 + "..."
	assert.Equal(t, long[:60]+"...", got)
}
