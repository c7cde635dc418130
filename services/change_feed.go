package services

import (
	"sync"

	"github.com/google/uuid"
)

// ChangeFeed is an in-process broker for invitation change signals.
// Notifications carry no payload; subscribers are expected to re-fetch.
// Delivery is at-least-once and unordered.
type ChangeFeed struct {
	mu        sync.Mutex
	listeners map[string]map[string]func() // userID -> listenerID -> callback
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{
		listeners: make(map[string]map[string]func()),
	}
}

// Subscribe registers onChange to fire whenever a change touching userID
// is published. The returned cancel function is safe to call repeatedly.
func (cf *ChangeFeed) Subscribe(userID string, onChange func()) func() {
	listenerID := uuid.NewString()

	cf.mu.Lock()
	if cf.listeners[userID] == nil {
		cf.listeners[userID] = make(map[string]func())
	}
	cf.listeners[userID][listenerID] = onChange
	cf.mu.Unlock()

	return func() {
		cf.mu.Lock()
		defer cf.mu.Unlock()
		if callbacks, ok := cf.listeners[userID]; ok {
			delete(callbacks, listenerID)
			if len(callbacks) == 0 {
				delete(cf.listeners, userID)
			}
		}
	}
}

// Publish signals a change touching each of the given user IDs. Callbacks
// run on separate goroutines so a slow subscriber cannot stall a writer.
func (cf *ChangeFeed) Publish(userIDs ...string) {
	cf.mu.Lock()
	var callbacks []func()
	for _, userID := range userIDs {
		for _, onChange := range cf.listeners[userID] {
			callbacks = append(callbacks, onChange)
		}
	}
	cf.mu.Unlock()

	for _, onChange := range callbacks {
		go onChange()
	}
}
