package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chmura-plikow/internal/models"
)

func TestSessionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	session := models.Session{
		Token:     randomID(t),
		UserID:    randomID(t),
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}

	require.NoError(t, testStore.Sessions.Put(ctx, session))

	found, err := testStore.Sessions.Get(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, session.UserID, found.UserID)
	require.WithinDuration(t, session.ExpiresAt, found.ExpiresAt, time.Second)

	missing, err := testStore.Sessions.Get(ctx, "nonexistent")
	require.NoError(t, err)
	require.Nil(t, missing)

	deleted, err := testStore.Sessions.Delete(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	again, err := testStore.Sessions.Delete(ctx, session.Token)
	require.NoError(t, err)
	require.Nil(t, again)
}
