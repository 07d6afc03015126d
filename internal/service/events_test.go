package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

type capturingPublisher struct {
	userIDs  []string
	messages [][]byte
}

func (p *capturingPublisher) PublishEvent(userID string, eventData []byte) {
	p.userIDs = append(p.userIDs, userID)
	p.messages = append(p.messages, eventData)
}

func TestJournalRecordAndSince(t *testing.T) {
	ctx := context.Background()
	publisher := &capturingPublisher{}
	journal := NewJournal(store.NewMemoryEventStore(), publisher)

	journal.Record(ctx, "u1", "folder_created", map[string]string{"id": "f1"})
	journal.Record(ctx, "u2", "file_uploaded", map[string]string{"id": "p1"})

	events, err := journal.Since(ctx, "u1", time.Time{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "folder_created", events[0].EventType)
	require.NotEqual(t, [16]byte{}, [16]byte(events[0].ID))

	var payload map[string]string
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	require.Equal(t, "f1", payload["id"])

	require.Equal(t, []string{"u1", "u2"}, publisher.userIDs)

	var published models.Event
	require.NoError(t, json.Unmarshal(publisher.messages[0], &published))
	require.Equal(t, "folder_created", published.EventType)
}

func TestJournalWithoutPublisher(t *testing.T) {
	ctx := context.Background()
	journal := NewJournal(store.NewMemoryEventStore(), nil)

	journal.Record(ctx, "u1", "folder_created", map[string]string{"id": "f1"})

	events, err := journal.Since(ctx, "u1", time.Time{})
	require.NoError(t, err)
	require.Len(t, events, 1)
}
