package services

import (
	"context"
	"sync"
)

type engineEntry struct {
	engine *InvitationEngine
	cancel func()
}

// InvitationEngineManager owns one InvitationEngine per active user. The
// first request for a user fetches the initial snapshot and opens the
// change subscription; Release tears the subscription down.
type InvitationEngineManager struct {
	repo InvitationRepository

	mu      sync.Mutex
	engines map[string]*engineEntry
}

func NewInvitationEngineManager(repo InvitationRepository) *InvitationEngineManager {
	return &InvitationEngineManager{
		repo:    repo,
		engines: make(map[string]*engineEntry),
	}
}

// GetOrCreate returns the engine for userID, creating, priming, and
// subscribing it on first use
func (m *InvitationEngineManager) GetOrCreate(ctx context.Context, userID string) (*InvitationEngine, error) {
	m.mu.Lock()
	if entry, ok := m.engines[userID]; ok {
		m.mu.Unlock()
		return entry.engine, nil
	}

	engine := NewInvitationEngine(m.repo, userID)
	entry := &engineEntry{engine: engine, cancel: engine.Subscribe()}
	m.engines[userID] = entry
	m.mu.Unlock()

	if err := engine.FetchInvitations(ctx); err != nil {
		// Keep the engine registered; the snapshot stays empty until a
		// retry or a change signal succeeds.
		return engine, err
	}
	return engine, nil
}

// Release cancels the user's change subscription and drops the engine.
// Releasing an unknown user is a no-op.
func (m *InvitationEngineManager) Release(userID string) {
	m.mu.Lock()
	entry, ok := m.engines[userID]
	delete(m.engines, userID)
	m.mu.Unlock()

	if ok {
		entry.cancel()
	}
}
