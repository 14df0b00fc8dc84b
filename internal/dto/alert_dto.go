package dto

// StockLevelChangedMessage travels over the in-process pubsub whenever an
// import or adjustment moves an item's stock level.
type StockLevelChangedMessage struct {
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	PreviousStatus string  `json:"previous_status"`
	OnHand         float64 `json:"on_hand"`
	CoverageDays   float64 `json:"coverage_days"`
}

// StockAlertNotification is pushed to connected dashboard clients.
type StockAlertNotification struct {
	Code         string  `json:"code"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	CoverageDays float64 `json:"coverage_days"`
	Message      string  `json:"message"`
}
