package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/service"
)

func randomID(t *testing.T) string {
	t.Helper()
	id, err := service.GenerateID()
	require.NoError(t, err)
	return id
}

func createRandomUser(t *testing.T) models.User {
	t.Helper()
	user := models.User{
		ID:           randomID(t),
		Login:        "user" + randomID(t),
		PasswordHash: service.HashPassword("Haslo1234"),
	}
	require.NoError(t, testStore.Users.Put(context.Background(), user))
	return user
}

func TestUsersPutGet(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)

	found, err := testStore.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, user, *found)

	missing, err := testStore.Users.Get(ctx, "nonexistent")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUsersGetByLogin(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)

	found, err := testStore.Users.GetByLogin(ctx, user.Login)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, user.ID, found.ID)
	require.NotEmpty(t, found.PasswordHash)

	missing, err := testStore.Users.GetByLogin(ctx, "nonexistent")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUsersPutOverwrites(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)

	user.PasswordHash = service.HashPassword("NoweHaslo1")
	require.NoError(t, testStore.Users.Put(ctx, user))

	found, err := testStore.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.PasswordHash, found.PasswordHash)
}

func TestUsersDelete(t *testing.T) {
	ctx := context.Background()
	user := createRandomUser(t)

	deleted, err := testStore.Users.Delete(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, user.Login, deleted.Login)

	gone, err := testStore.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	again, err := testStore.Users.Delete(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}
