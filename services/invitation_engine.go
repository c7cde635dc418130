package services

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"hackmate_server/models"
)

// InvitationEngine holds the live invitation state for one user: received
// and sent invitations (newest first), the pending-received count, and a
// loading flag. State is refreshed wholesale by FetchInvitations, either
// on demand or when the change feed signals a relevant write.
//
// Concurrent fetches are resolved by a monotonic sequence number: a
// completion older than the last applied snapshot is discarded instead of
// clobbering fresher data.
type InvitationEngine struct {
	repo   InvitationRepository
	userID string

	mu          sync.Mutex
	received    []models.TeamInvitation
	sent        []models.TeamInvitation
	unreadCount int
	isLoading   bool

	fetchSeq   uint64
	appliedSeq uint64
}

func NewInvitationEngine(repo InvitationRepository, userID string) *InvitationEngine {
	return &InvitationEngine{
		repo:     repo,
		userID:   userID,
		received: []models.TeamInvitation{},
		sent:     []models.TeamInvitation{},
	}
}

// UserID returns the user this engine tracks
func (e *InvitationEngine) UserID() string {
	return e.userID
}

// ReceivedInvitations returns a copy of the received snapshot, newest first
func (e *InvitationEngine) ReceivedInvitations() []models.TeamInvitation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.TeamInvitation{}, e.received...)
}

// SentInvitations returns a copy of the sent snapshot, newest first
func (e *InvitationEngine) SentInvitations() []models.TeamInvitation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.TeamInvitation{}, e.sent...)
}

// UnreadCount returns the number of received invitations still pending
func (e *InvitationEngine) UnreadCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unreadCount
}

// IsLoading reports whether a fetch is in flight
func (e *InvitationEngine) IsLoading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isLoading
}

// FetchInvitations replaces the engine state with a fresh snapshot from
// the store: both invitation queries, one batched profile lookup for every
// counterparty, and a recomputed unread count. On failure the previous
// snapshot stays intact and the call is safe to retry.
func (e *InvitationEngine) FetchInvitations(ctx context.Context) error {
	seq := atomic.AddUint64(&e.fetchSeq, 1)

	e.mu.Lock()
	e.isLoading = true
	e.mu.Unlock()

	received, sent, err := e.loadSnapshot(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.isLoading = false
	if err != nil {
		log.Printf("Error fetching invitations for %s: %v", e.userID, err)
		return err
	}
	if seq < e.appliedSeq {
		// A newer fetch already landed; this result is stale.
		return nil
	}

	e.appliedSeq = seq
	e.received = received
	e.sent = sent
	e.unreadCount = countPending(received)
	return nil
}

func (e *InvitationEngine) loadSnapshot(ctx context.Context) (received, sent []models.TeamInvitation, err error) {
	received, err = e.repo.ListInvitations(ctx, InvitationFilter{AsRecipient: e.userID})
	if err != nil {
		return nil, nil, err
	}
	sent, err = e.repo.ListInvitations(ctx, InvitationFilter{AsSender: e.userID})
	if err != nil {
		return nil, nil, err
	}

	// One batched lookup for every counterparty referenced by either list
	idSet := make(map[string]struct{})
	var ids []string
	for _, invitation := range received {
		if _, ok := idSet[invitation.FromUserID]; !ok {
			idSet[invitation.FromUserID] = struct{}{}
			ids = append(ids, invitation.FromUserID)
		}
	}
	for _, invitation := range sent {
		if _, ok := idSet[invitation.ToUserID]; !ok {
			idSet[invitation.ToUserID] = struct{}{}
			ids = append(ids, invitation.ToUserID)
		}
	}

	profiles, err := e.repo.ListProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	for i := range received {
		if profile, ok := profiles[received[i].FromUserID]; ok {
			enriched := profile
			received[i].FromProfile = &enriched
		}
	}
	for i := range sent {
		if profile, ok := profiles[sent[i].ToUserID]; ok {
			enriched := profile
			sent[i].ToProfile = &enriched
		}
	}

	if received == nil {
		received = []models.TeamInvitation{}
	}
	if sent == nil {
		sent = []models.TeamInvitation{}
	}
	return received, sent, nil
}

// SendInvitation creates a pending invitation from this engine's user and
// resynchronizes on success. A duplicate pair surfaces as ErrAlreadyInvited
// with state untouched.
func (e *InvitationEngine) SendInvitation(ctx context.Context, toUserID, hackathonID, message string) error {
	if _, err := e.repo.CreateInvitation(ctx, e.userID, toUserID, hackathonID, message); err != nil {
		return err
	}

	// Full refetch instead of an optimistic local insert; the extra round
	// trip buys a consistent snapshot.
	return e.FetchInvitations(ctx)
}

// RespondToInvitation accepts or declines a received invitation. On
// success the matching entry is patched in place and the unread count
// recomputed; no refetch is issued.
func (e *InvitationEngine) RespondToInvitation(ctx context.Context, invitationID, status string) error {
	if status != models.InvitationStatusAccepted && status != models.InvitationStatusDeclined {
		return ErrInvalidStatus
	}

	if err := e.repo.UpdateInvitationStatus(ctx, invitationID, status); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.received {
		if e.received[i].InvitationID == invitationID {
			e.received[i].Status = status
			break
		}
	}
	e.unreadCount = countPending(e.received)
	return nil
}

// Subscribe opens a change subscription that refetches this engine's state
// on every signal. The returned cancel function is idempotent.
func (e *InvitationEngine) Subscribe() func() {
	cancel := e.repo.SubscribeToChanges(e.userID, func() {
		if err := e.FetchInvitations(context.Background()); err != nil {
			log.Printf("Error refreshing invitations for %s: %v", e.userID, err)
		}
	})

	var once sync.Once
	return func() {
		once.Do(cancel)
	}
}

func countPending(invitations []models.TeamInvitation) int {
	count := 0
	for _, invitation := range invitations {
		if invitation.Status == models.InvitationStatusPending {
			count++
		}
	}
	return count
}
