package client

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"aitutor/backend/models"

	"github.com/go-resty/resty/v2"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultDedupeWindow = 5 * time.Second
	defaultFetchLimit   = 20
)

type notificationEnvelope struct {
	Success    bool                  `json:"success"`
	Data       []models.Notification `json:"data"`
	IsMockData bool                  `json:"isMockData"`
}

// NotificationBell polls the notifications endpoint and keeps a local view
// reconciled through the read-state overlay. Mark-read operations are
// optimistic: local state updates immediately and is never reverted when the
// persistence call fails.
type NotificationBell struct {
	api     *resty.Client
	overlay *ReadOverlay
	log     *log.Logger

	Interval time.Duration
	Dedupe   time.Duration
	Limit    int

	mu        sync.Mutex
	lastFetch time.Time
	items     []models.Notification
}

func NewNotificationBell(baseURL, token string, logger *log.Logger) *NotificationBell {
	api := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Cache-Control", "no-cache")

	return &NotificationBell{
		api:      api,
		overlay:  NewReadOverlay(),
		log:      logger,
		Interval: defaultPollInterval,
		Dedupe:   defaultDedupeWindow,
		Limit:    defaultFetchLimit,
	}
}

// Notifications returns a copy of the current merged view.
func (b *NotificationBell) Notifications() []models.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	view := make([]models.Notification, len(b.items))
	copy(view, b.items)
	return view
}

func (b *NotificationBell) UnreadCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	count := 0
	for _, notification := range b.items {
		if !notification.IsRead {
			count++
		}
	}
	return count
}

// Refresh fetches the latest server snapshot and merges it through the
// overlay. Calls landing inside the dedupe window are dropped, so interval
// polls and focus-triggered revalidation don't stack redundant requests.
func (b *NotificationBell) Refresh(ctx context.Context) error {
	b.mu.Lock()
	if time.Since(b.lastFetch) < b.Dedupe {
		b.mu.Unlock()
		return nil
	}
	b.lastFetch = time.Now()
	b.mu.Unlock()

	var envelope notificationEnvelope
	resp, err := b.api.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(b.Limit)).
		SetResult(&envelope).
		Get("/api/notifications")
	if err != nil {
		return err
	}
	if resp.IsError() {
		b.log.Printf("Notification poll failed: %s", resp.Status())
		return nil
	}

	merged := b.overlay.Apply(envelope.Data)

	b.mu.Lock()
	b.items = merged
	b.mu.Unlock()
	return nil
}

// MarkRead marks one notification read locally and queues the persistence
// call. A failed persistence call is logged, not reverted.
func (b *NotificationBell) MarkRead(ctx context.Context, id string) {
	b.overlay.MarkRead(id)

	b.mu.Lock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].IsRead = true
		}
	}
	b.mu.Unlock()

	resp, err := b.api.R().
		SetContext(ctx).
		SetBody(map[string]string{"id": id}).
		Post("/api/notifications/read")
	if err != nil {
		b.log.Printf("Error persisting read state for %s: %v", id, err)
		return
	}
	if resp.IsError() {
		b.log.Printf("Error persisting read state for %s: %s", id, resp.Status())
	}
}

// MarkAllRead marks everything in the current view read and queues one
// mark-all persistence call.
func (b *NotificationBell) MarkAllRead(ctx context.Context) {
	b.mu.Lock()
	for i := range b.items {
		b.overlay.MarkRead(b.items[i].ID)
		b.items[i].IsRead = true
	}
	b.mu.Unlock()

	resp, err := b.api.R().
		SetContext(ctx).
		Post("/api/notifications/mark-all-read")
	if err != nil {
		b.log.Printf("Error persisting mark-all-read: %v", err)
		return
	}
	if resp.IsError() {
		b.log.Printf("Error persisting mark-all-read: %s", resp.Status())
	}
}

// Run polls on the fixed interval until the context is cancelled. Callers
// may additionally invoke Refresh on focus events; the dedupe window keeps
// the two sources from doubling up.
func (b *NotificationBell) Run(ctx context.Context) {
	if err := b.Refresh(ctx); err != nil {
		b.log.Printf("Notification poll error: %v", err)
	}

	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.Refresh(ctx); err != nil {
				b.log.Printf("Notification poll error: %v", err)
			}
		}
	}
}
