// Package client implements the notification-bell consumer: a polling
// fetcher with an optimistic read-state overlay.
package client

import (
	"sync"

	"aitutor/backend/models"
)

// MergeReadState lays local read marks over a server snapshot. Any
// notification whose id is in readIDs is forced to read regardless of the
// server value, so a slow-to-persist mark-read can never visually un-read a
// notification on the next poll. Read state is monotonic: once read locally,
// never shown unread again.
func MergeReadState(server []models.Notification, readIDs map[string]bool) []models.Notification {
	merged := make([]models.Notification, len(server))
	for i, notification := range server {
		if readIDs[notification.ID] {
			notification.IsRead = true
		}
		merged[i] = notification
	}
	return merged
}

// ReadOverlay collects ids marked read locally but not yet confirmed
// persisted. Safe for concurrent use.
type ReadOverlay struct {
	mu   sync.Mutex
	read map[string]bool
}

func NewReadOverlay() *ReadOverlay {
	return &ReadOverlay{read: make(map[string]bool)}
}

func (o *ReadOverlay) MarkRead(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.read[id] = true
}

func (o *ReadOverlay) IsRead(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.read[id]
}

// Apply merges the overlay over a server snapshot.
func (o *ReadOverlay) Apply(server []models.Notification) []models.Notification {
	o.mu.Lock()
	snapshot := make(map[string]bool, len(o.read))
	for id := range o.read {
		snapshot[id] = true
	}
	o.mu.Unlock()

	return MergeReadState(server, snapshot)
}
