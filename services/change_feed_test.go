package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChangeFeed_PublishReachesBothParticipants verifies a single publish
// covering sender and recipient fires both listeners.
func TestChangeFeed_PublishReachesBothParticipants(t *testing.T) {
	feed := NewChangeFeed()

	var senderHits, recipientHits atomic.Int64
	cancelSender := feed.Subscribe("alice", func() { senderHits.Add(1) })
	cancelRecipient := feed.Subscribe("bob", func() { recipientHits.Add(1) })
	defer cancelSender()
	defer cancelRecipient()

	feed.Publish("alice", "bob")

	require.Eventually(t, func() bool {
		return senderHits.Load() == 1 && recipientHits.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

// TestChangeFeed_NoCrossTalk verifies listeners only see changes touching
// their own user.
func TestChangeFeed_NoCrossTalk(t *testing.T) {
	feed := NewChangeFeed()

	var hits atomic.Int64
	cancel := feed.Subscribe("carol", func() { hits.Add(1) })
	defer cancel()

	feed.Publish("alice", "bob")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), hits.Load())
}

// TestChangeFeed_CancelStopsDelivery verifies no signal arrives after
// cancellation and that cancelling twice is harmless.
func TestChangeFeed_CancelStopsDelivery(t *testing.T) {
	feed := NewChangeFeed()

	var hits atomic.Int64
	cancel := feed.Subscribe("dave", func() { hits.Add(1) })

	feed.Publish("dave")
	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	cancel() // idempotent

	feed.Publish("dave")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), hits.Load())
}

// TestChangeFeed_MultipleListenersPerUser verifies every listener for a
// user fires, and cancelling one leaves the other live.
func TestChangeFeed_MultipleListenersPerUser(t *testing.T) {
	feed := NewChangeFeed()

	var first, second atomic.Int64
	cancelFirst := feed.Subscribe("erin", func() { first.Add(1) })
	cancelSecond := feed.Subscribe("erin", func() { second.Add(1) })
	defer cancelSecond()

	feed.Publish("erin")
	require.Eventually(t, func() bool {
		return first.Load() == 1 && second.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancelFirst()
	feed.Publish("erin")
	require.Eventually(t, func() bool { return second.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(1), first.Load())
}
