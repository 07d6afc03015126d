package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is one entry of a user's change journal. Clients use the journal
// (and its websocket feed) to keep their local view in sync.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"-"`
	EventType string          `json:"event_type"`
	EventTime time.Time       `json:"event_time"`
	Payload   json.RawMessage `json:"payload"`
}
