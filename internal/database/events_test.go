package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

func TestEventsAppendAndSince(t *testing.T) {
	ctx := context.Background()
	userID := randomID(t)
	base := time.Now().Truncate(time.Microsecond)

	for i := 0; i < 3; i++ {
		err := testStore.Events.Append(ctx, models.Event{
			ID:        uuid.New(),
			UserID:    userID,
			EventType: "folder_created",
			EventTime: base.Add(time.Duration(i) * time.Minute),
			Payload:   []byte(`{"id":"f1"}`),
		})
		require.NoError(t, err)
	}

	events, err := testStore.Events.Since(ctx, userID, time.Time{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.True(t, events[0].EventTime.Before(events[1].EventTime))
	require.True(t, events[1].EventTime.Before(events[2].EventTime))
	require.JSONEq(t, `{"id":"f1"}`, string(events[0].Payload))

	newer, err := testStore.Events.Since(ctx, userID, base.Add(90*time.Second))
	require.NoError(t, err)
	require.Len(t, newer, 1)

	none, err := testStore.Events.Since(ctx, "nonexistent", time.Time{})
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestEventsSincePageLimit(t *testing.T) {
	ctx := context.Background()
	userID := randomID(t)
	base := time.Now().Truncate(time.Microsecond)

	for i := 0; i < store.EventPageSize+5; i++ {
		err := testStore.Events.Append(ctx, models.Event{
			ID:        uuid.New(),
			UserID:    userID,
			EventType: "file_uploaded",
			EventTime: base.Add(time.Duration(i) * time.Second),
			Payload:   []byte(`{}`),
		})
		require.NoError(t, err)
	}

	events, err := testStore.Events.Since(ctx, userID, time.Time{})
	require.NoError(t, err)
	require.Len(t, events, store.EventPageSize)

	next, err := testStore.Events.Since(ctx, userID, events[len(events)-1].EventTime)
	require.NoError(t, err)
	require.Len(t, next, 5)
}
