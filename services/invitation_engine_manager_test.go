package services

import (
	"context"
	"testing"
	"time"

	"hackmate_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineManager_ReusesEngine(t *testing.T) {
	repo := newFakeRepository()
	manager := NewInvitationEngineManager(repo)
	ctx := context.Background()

	first, err := manager.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	second, err := manager.GetOrCreate(ctx, "alice")
	require.NoError(t, err)

	assert.Same(t, first, second, "one engine per active user")
}

func TestEngineManager_PrimesAndSubscribes(t *testing.T) {
	repo := newFakeRepository()
	repo.addProfile(models.Profile{ID: "bob", Name: "Bob"})
	ctx := context.Background()

	_, err := repo.CreateInvitation(ctx, "bob", "alice", "", "")
	require.NoError(t, err)

	manager := NewInvitationEngineManager(repo)
	engine, err := manager.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, engine.ReceivedInvitations(), 1, "first use fetches the initial snapshot")

	// The subscription opened by GetOrCreate keeps the snapshot fresh.
	_, err = repo.CreateInvitation(ctx, "bob", "alice", "hack-1", "")
	require.ErrorIs(t, err, ErrAlreadyInvited)
	_, err = repo.CreateInvitation(ctx, "carol", "alice", "", "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(engine.ReceivedInvitations()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestEngineManager_ReleaseTearsDownSubscription(t *testing.T) {
	repo := newFakeRepository()
	manager := NewInvitationEngineManager(repo)
	ctx := context.Background()

	engine, err := manager.GetOrCreate(ctx, "alice")
	require.NoError(t, err)

	manager.Release("alice")
	manager.Release("alice") // releasing twice is a no-op

	_, err = repo.CreateInvitation(ctx, "bob", "alice", "", "")
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, engine.ReceivedInvitations(), "released engines stop refetching")

	replacement, err := manager.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	assert.NotSame(t, engine, replacement, "a fresh engine is built after release")
	assert.Len(t, replacement.ReceivedInvitations(), 1)
}
