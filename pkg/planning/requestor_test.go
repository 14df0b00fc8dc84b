package planning

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexum-inventory-be/internal/constant"
	"nexum-inventory-be/pkg/llm"
)

// mockProvider counts calls and returns a scripted response.
type mockProvider struct {
	calls      int64
	response   string
	err        error
	lastPrompt string
}

func (m *mockProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	atomic.AddInt64(&m.calls, 1)
	m.lastPrompt = prompt
	return m.response, m.err
}

func (m *mockProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return m.Generate(ctx, history[len(history)-1].Content, opts...)
}

func criticalFixture() []CriticalItem {
	return []CriticalItem{
		{Code: "X", AbcClass: "A", OnHand: 10, MaxStock: 200, Cmm: 50, InTransit: 0, OrderQuantity: 90},
	}
}

func TestRequestPurchasePlanEmptyInputShortCircuits(t *testing.T) {
	mock := &mockProvider{}
	r := NewPlanRequestor(mock)

	res := r.RequestPurchasePlan(context.Background(), nil)

	assert.True(t, res.Empty)
	assert.Equal(t, constant.PlannerNoCriticalItemsMessage, res.Message)
	assert.False(t, res.IsError())
	assert.Equal(t, int64(0), atomic.LoadInt64(&mock.calls), "no outbound call may be made for empty input")
}

func TestRequestPurchasePlanParsesFencedResponse(t *testing.T) {
	mock := &mockProvider{
		response: "```json\n[{\"codigo\":\"X\",\"acao_sugerida\":\"ISSUE_PURCHASE_ORDER\",\"quantidade_acao\":90,\"justificativa_curta\":\"stockout risk\"}]\n```",
	}
	r := NewPlanRequestor(mock)

	res := r.RequestPurchasePlan(context.Background(), criticalFixture())

	require.False(t, res.IsError(), "unexpected error: %s", res.Err)
	require.Len(t, res.Lines, 1)
	line := res.Lines[0]
	assert.Equal(t, "X", line.Code)
	assert.Equal(t, ActionIssuePurchaseOrder, line.Action)
	assert.Equal(t, float64(90), line.Quantity)
	assert.Equal(t, "stockout risk", line.Justification)
	assert.Equal(t, int64(1), atomic.LoadInt64(&mock.calls))
}

func TestRequestPurchasePlanUnfencedResponse(t *testing.T) {
	mock := &mockProvider{
		response: `[{"codigo":"X","acao_sugerida":"MONITOR","quantidade_acao":0,"justificativa_curta":"covered"}]`,
	}
	r := NewPlanRequestor(mock)

	res := r.RequestPurchasePlan(context.Background(), criticalFixture())

	require.Len(t, res.Lines, 1)
	assert.Equal(t, ActionMonitor, res.Lines[0].Action)
}

func TestRequestPurchasePlanMalformedResponsePreservesRaw(t *testing.T) {
	raw := "Sorry, I cannot produce a plan right now."
	mock := &mockProvider{response: raw}
	r := NewPlanRequestor(mock)

	res := r.RequestPurchasePlan(context.Background(), criticalFixture())

	require.True(t, res.IsError())
	assert.Equal(t, raw, res.RawResponse, "original text must survive verbatim for diagnosis")
	assert.Empty(t, res.Lines)
	assert.False(t, res.Empty)
}

func TestRequestPurchasePlanTransportFailure(t *testing.T) {
	mock := &mockProvider{err: errors.New("connection refused")}
	r := NewPlanRequestor(mock)

	res := r.RequestPurchasePlan(context.Background(), criticalFixture())

	require.True(t, res.IsError())
	assert.Contains(t, res.Err, "connection refused")
	assert.Empty(t, res.RawResponse)
	assert.Equal(t, int64(1), atomic.LoadInt64(&mock.calls), "single attempt, no retry")
}

func TestRequestPurchasePlanPromptCarriesPolicyAndPayload(t *testing.T) {
	mock := &mockProvider{response: "[]"}
	r := NewPlanRequestor(mock)

	r.RequestPurchasePlan(context.Background(), criticalFixture())

	// The decision policy must be reproduced verbatim in every request.
	assert.True(t, strings.Contains(mock.lastPrompt, constant.PlannerSystemInstructionV1))
	assert.Contains(t, mock.lastPrompt, `"codigo": "X"`)
	assert.Contains(t, mock.lastPrompt, `"quantidade_a_comprar": 90`)
}

func TestParsePlanLinesWrongShape(t *testing.T) {
	// Parseable JSON that is not an array of plan lines is a parse failure.
	_, err := parsePlanLines(`{"codigo":"X"}`)
	assert.Error(t, err)
}
