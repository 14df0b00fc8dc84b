package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PLAN_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event codes emitted by this service.
const (
	TypeUserLogin     = "USER_LOGIN"
	TypePlanGenerated = "PLAN_GENERATED"
	TypeStockCritical = "STOCK_CRITICAL"
)

func NewUserLoginEvent(userId, device string) BaseEvent {
	return BaseEvent{
		Type: TypeUserLogin,
		Data: map[string]interface{}{
			"user_id": userId,
			"device":  device,
			"time":    time.Now().Format(time.RFC822),
		},
		OccurredAt: time.Now(),
	}
}

func NewPlanGeneratedEvent(planId string, lineCount int) BaseEvent {
	return BaseEvent{
		Type: TypePlanGenerated,
		Data: map[string]interface{}{
			"plan_id":    planId,
			"line_count": lineCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewStockCriticalEvent(itemCode string, coverageDays float64) BaseEvent {
	return BaseEvent{
		Type: TypeStockCritical,
		Data: map[string]interface{}{
			"item_code":     itemCode,
			"coverage_days": coverageDays,
		},
		OccurredAt: time.Now(),
	}
}
