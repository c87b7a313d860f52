package amqp

import (
	"encoding/json"
	"time"
)

// Event types carried on the sale events queue.
const (
	EventSaleRecorded = "sale.recorded"
	EventSaleDeleted  = "sale.deleted"
)

// SaleEvent is the message published after a ledger mutation. Recorded
// events carry only the id; the worker reloads the full record from the
// shared snapshot. Deleted events carry the sale's fields so the export
// side can locate the row after the record is gone from the ledger.
type SaleEvent struct {
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	ValueCents  int64     `json:"value_cents,omitempty"`
	Source      string    `json:"source,omitempty"`
	Date        string    `json:"date,omitempty"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewSaleRecorded creates a recorded event for the given sale id.
func NewSaleRecorded(id string) *SaleEvent {
	return &SaleEvent{
		Type:      EventSaleRecorded,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// NewSaleDeleted creates a deleted event carrying the removed sale's fields.
func NewSaleDeleted(id string, valueCents int64, source, date, description string) *SaleEvent {
	return &SaleEvent{
		Type:        EventSaleDeleted,
		ID:          id,
		ValueCents:  valueCents,
		Source:      source,
		Date:        date,
		Description: description,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *SaleEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// SaleEventFromJSON creates an event from JSON bytes.
func SaleEventFromJSON(data []byte) (*SaleEvent, error) {
	var e SaleEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
