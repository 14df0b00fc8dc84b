package planning

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nexum-inventory-be/internal/constant"
	"nexum-inventory-be/pkg/llm"
)

// Requestor turns a triage-selected critical set into a purchase plan.
type Requestor interface {
	RequestPurchasePlan(ctx context.Context, items []CriticalItem) PlanResult
}

// PlanRequestor packages critical items into a policy-plus-data request,
// sends it to the reasoning service and parses the structured response.
// One outbound call per invocation, no retry; every failure mode is folded
// into the returned PlanResult instead of an error escaping the boundary.
type PlanRequestor struct {
	provider llm.LLMProvider
}

var _ Requestor = &PlanRequestor{}

func NewPlanRequestor(provider llm.LLMProvider) *PlanRequestor {
	return &PlanRequestor{provider: provider}
}

func (r *PlanRequestor) RequestPurchasePlan(ctx context.Context, items []CriticalItem) PlanResult {
	// Required short-circuit: an empty payload must never be billed.
	if len(items) == 0 {
		return PlanResult{
			Empty:   true,
			Message: constant.PlannerNoCriticalItemsMessage,
		}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return PlanResult{Err: fmt.Sprintf("serialize critical items: %v", err)}
	}

	prompt := constant.PlannerSystemInstructionV1 + "\n" +
		fmt.Sprintf(constant.PlannerUserPromptTemplateV1, string(payload))

	raw, err := r.provider.Generate(ctx, prompt)
	if err != nil {
		return PlanResult{Err: err.Error()}
	}

	lines, parseErr := parsePlanLines(raw)
	if parseErr != nil {
		return PlanResult{
			Err:         "reasoning service response was not valid JSON",
			RawResponse: raw,
		}
	}

	return PlanResult{Lines: lines}
}

// parsePlanLines strips any markdown code-fence wrapping and decodes the
// remaining text as a plan-line array.
func parsePlanLines(raw string) ([]PlanLine, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var lines []PlanLine
	if err := json.Unmarshal([]byte(clean), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
