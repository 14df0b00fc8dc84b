package planning

// SuggestedAction is the action the reasoning service assigns to a plan line.
type SuggestedAction string

const (
	ActionIssuePurchaseOrder SuggestedAction = "ISSUE_PURCHASE_ORDER"
	ActionInvestigateDemand  SuggestedAction = "INVESTIGATE_DEMAND"
	ActionMonitor            SuggestedAction = "MONITOR"
)

// DefaultCriticalCap bounds the triage output. The reasoning call has a
// cost/latency budget proportional to payload size, so the critical set is
// truncated before it ever leaves the process.
const DefaultCriticalCap = 5

// InventoryRecord is the triage engine's view of one inventory position. The
// package deliberately owns its input type: callers map their storage entities
// into it, keeping the engine free of persistence concerns.
type InventoryRecord struct {
	Code      string
	OnHand    float64
	MaxStock  float64
	Cmm       float64
	InTransit float64
}

// CriticalItem is one triage-selected item, serialized as the variable payload
// of the plan request. Created fresh on each triage invocation and discarded
// after serialization; never persisted. The JSON keys are the wire contract
// with the reasoning service and must not change independently of the
// instruction text.
type CriticalItem struct {
	Code          string  `json:"codigo"`
	AbcClass      string  `json:"abc"` // defaulted to "A", not sourced from the record yet
	OnHand        float64 `json:"estoque_atual"`
	MaxStock      float64 `json:"estoque_maximo"`
	Cmm           float64 `json:"cmm"`
	InTransit     float64 `json:"compras_em_andamento"`
	OrderQuantity float64 `json:"quantidade_a_comprar"`
}

// PlanLine is one action recommendation as returned by the reasoning service.
// The core validates the shape but never recomputes the content.
type PlanLine struct {
	Code          string          `json:"codigo"`
	Action        SuggestedAction `json:"acao_sugerida"`
	Quantity      float64         `json:"quantidade_acao"`
	Justification string          `json:"justificativa_curta"`
}

// PlanResult is a tagged union: exactly one of the three shapes is populated
// per invocation.
//   - Lines set: the service returned a parseable plan.
//   - Empty true: triage selected nothing; Message carries the fixed notice.
//   - Err set: transport failure or unparseable content; RawResponse keeps the
//     original text for diagnosis when parsing failed.
type PlanResult struct {
	Lines       []PlanLine
	Empty       bool
	Message     string
	Err         string
	RawResponse string
}

// IsError reports whether the result is the error variant.
func (r PlanResult) IsError() bool {
	return r.Err != ""
}
