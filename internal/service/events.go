package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

// EventPublisher pushes a serialized event to the live connections of one
// user. The websocket hub implements it.
type EventPublisher interface {
	PublishEvent(userID string, eventData []byte)
}

// Journal records the changes a user makes, for polling via Since and for
// live delivery over the publisher. Journal failures are logged, never
// surfaced: the journal must not fail the operation it describes.
type Journal struct {
	events    store.EventStore
	publisher EventPublisher
}

func NewJournal(events store.EventStore, publisher EventPublisher) *Journal {
	return &Journal{events: events, publisher: publisher}
}

func (j *Journal) Record(ctx context.Context, userID, eventType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("WARN: failed to marshal %s event payload: %v", eventType, err)
		return
	}

	event := models.Event{
		ID:        uuid.New(),
		UserID:    userID,
		EventType: eventType,
		EventTime: time.Now(),
		Payload:   body,
	}
	if err := j.events.Append(ctx, event); err != nil {
		log.Printf("WARN: failed to append %s event for user %s: %v", eventType, userID, err)
	}

	if j.publisher != nil {
		message, err := json.Marshal(event)
		if err != nil {
			log.Printf("WARN: failed to marshal %s event: %v", eventType, err)
			return
		}
		j.publisher.PublishEvent(userID, message)
	}
}

// Since returns the user's events after the given instant, oldest first.
func (j *Journal) Since(ctx context.Context, userID string, since time.Time) ([]models.Event, error) {
	return j.events.Since(ctx, userID, since)
}
