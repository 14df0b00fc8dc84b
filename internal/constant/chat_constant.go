package constant

const (
	// ChatIntentPlan triggers the full triage plus reasoning pipeline.
	ChatIntentPlan = "plan"
	// ChatIntentCritical answers with the current critical snapshot.
	ChatIntentCritical = "critical"
	// ChatIntentGuidance is the fallback for anything the assistant cannot
	// route to an inventory operation.
	ChatIntentGuidance = "guidance"

	ChatGuidanceMessage = `I can help you with inventory operations. Try:
- "generate purchase plan" to run the purchase planner
- "critical items" to list items at risk of stockout`

	ChatNoCriticalItemsMessage = "No items are below their target stock level right now."
)
