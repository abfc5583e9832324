package amqp

import (
	"encoding/json"
	"time"

	"finance-analytics/internal/models"
)

// BudgetAlertMessageType identifies threshold crossing messages for consumers
const BudgetAlertMessageType = "budget.threshold_crossed"

// BudgetAlertMessage carries one crossed budget threshold
type BudgetAlertMessage struct {
	Type          string             `json:"type"`
	Alert         models.BudgetAlert `json:"alert"`
	CorrelationID string             `json:"correlation_id,omitempty"`
	PublishedAt   time.Time          `json:"published_at"`
}

// NewBudgetAlertMessage wraps an alert for publishing
func NewBudgetAlertMessage(alert *models.BudgetAlert, correlationID string, now time.Time) *BudgetAlertMessage {
	return &BudgetAlertMessage{
		Type:          BudgetAlertMessageType,
		Alert:         *alert,
		CorrelationID: correlationID,
		PublishedAt:   now.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *BudgetAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetAlertMessageFromJSON decodes a message produced by ToJSON
func BudgetAlertMessageFromJSON(data []byte) (*BudgetAlertMessage, error) {
	var msg BudgetAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
