package database

import (
	"context"
	"time"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

type Events struct {
	db DBTX
}

func (s *Events) Append(ctx context.Context, event models.Event) error {
	query := `
		INSERT INTO event_journal (id, user_id, event_type, event_time, payload)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.Exec(ctx, query, event.ID, event.UserID, event.EventType, event.EventTime, event.Payload)
	return err
}

func (s *Events) Since(ctx context.Context, userID string, since time.Time) ([]models.Event, error) {
	query := `
		SELECT id, user_id, event_type, event_time, payload
		FROM event_journal
		WHERE user_id = $1 AND event_time > $2
		ORDER BY event_time ASC
		LIMIT $3
	`
	rows, err := s.db.Query(ctx, query, userID, since, store.EventPageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.UserID, &event.EventType, &event.EventTime, &event.Payload); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if events == nil {
		return []models.Event{}, nil
	}

	return events, nil
}
