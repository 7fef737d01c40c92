package events

import (
	"encoding/json"
	"github.com/google/uuid"
	"time"
)

type Type string

const (
	PersonCreated      Type = "person.created"
	PersonDeleted      Type = "person.deleted"
	CategoryCreated    Type = "category.created"
	CategoryDeleted    Type = "category.deleted"
	TransactionCreated Type = "transaction.created"
)

// Event is a notification about a change in the expense store. The type doubles as routing key.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

func New(eventType Type, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
