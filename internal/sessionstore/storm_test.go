package sessionstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradelayer/sessiongate/internal/model"
	"github.com/tradelayer/sessiongate/internal/sessionstore"
)

func TestStormGet(t *testing.T) {
	store, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()

	session := model.NewSessionEntity("abc123", "u1")
	session.ExtendExpiration(time.Now().Add(24 * time.Hour))
	session.SetClaim(model.SessionClaim{Name: "trade", Expires: time.Now().Add(time.Hour).UnixMicro()})
	session.SetClaim(model.SessionClaim{Name: "withdraw", Expires: time.Now().Add(time.Minute).UnixMicro(), IP: "203.0.113.7"})
	require.NoError(t, store.Save(ctx, session))

	found, err := store.Get(ctx, model.PartitionKey, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "u1", found.TraderID)
	assert.Equal(t, "abc123", found.Token())
	assert.ElementsMatch(t, session.Claims, found.Claims)
}

func TestStormGetMiss(t *testing.T) {
	store, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()

	_, err := store.Get(ctx, model.PartitionKey, "unknown")
	assert.Error(t, err)
	assert.True(t, store.IsNotFound(err))
}

func TestStormGetPartitionIsolation(t *testing.T) {
	store, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()

	session := model.NewSessionEntity("abc123", "u1")
	require.NoError(t, store.Save(ctx, session))

	_, err := store.Get(ctx, "other", "abc123")
	assert.True(t, store.IsNotFound(err))
}

func TestStormGetCancelled(t *testing.T) {
	store, cleanup := setup(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, model.PartitionKey, "abc123")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.IsNotFound(err))
}

func TestStormDelete(t *testing.T) {
	store, cleanup := setup(t)
	defer cleanup()

	ctx := context.Background()

	session := model.NewSessionEntity("abc123", "u1")
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, session))

	_, err := store.Get(ctx, model.PartitionKey, "abc123")
	assert.True(t, store.IsNotFound(err))
}

func setup(t *testing.T) (store sessionstore.Client, cleanup func()) {
	tmpfile, err := os.CreateTemp("", "sessiongate.*.db")
	require.NoError(t, err)
	filename := tmpfile.Name()
	tmpfile.Close()

	store, err = sessionstore.StormOpen(filename)
	require.NoError(t, err)

	return store, func() {
		store.Close()
		os.RemoveAll(filename)
	}
}
