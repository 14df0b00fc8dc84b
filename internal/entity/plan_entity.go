package entity

import (
	"time"

	"github.com/google/uuid"

	"nexum-inventory-be/pkg/planning"
)

type PlanOutcome string

const (
	PlanOutcomeGenerated PlanOutcome = "generated"
	PlanOutcomeEmpty     PlanOutcome = "empty"
	PlanOutcomeError     PlanOutcome = "error"
)

// GeneratedPlan is one persisted planner invocation: who asked, what triage
// selected, and what the reasoning service answered.
type GeneratedPlan struct {
	Id            uuid.UUID
	RequestedBy   uuid.UUID
	Outcome       PlanOutcome
	CriticalCount int
	Lines         []planning.PlanLine
	Message       string // empty-variant notice or error message
	RawResponse   string // unparseable response text, kept for diagnosis
	CreatedAt     time.Time
}
