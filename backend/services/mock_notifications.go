package services

import (
	"time"

	"aitutor/backend/models"
)

// MockNotifications returns the demo notification list served when the
// request carries no valid credentials. Deterministic for a given clock so
// the UI stays stable across polls.
func MockNotifications(userID uint, limit int, now time.Time) []models.Notification {
	base := []models.Notification{
		{
			ID:        "mock1",
			UserID:    userID,
			Title:     "Welcome to AI Tutor!",
			Message:   "Thanks for joining. Explore different subjects to get started.",
			Type:      models.NotificationSystem,
			IsRead:    false,
			CreatedAt: now,
			Link:      "/dashboard",
		},
		{
			ID:        "mock2",
			UserID:    userID,
			Title:     "You started a learning streak!",
			Message:   "Keep learning daily to build your streak.",
			Type:      models.NotificationStreak,
			IsRead:    false,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        "mock3",
			UserID:    userID,
			Title:     "New math content available",
			Message:   "Check out new algebra lessons and practice exercises.",
			Type:      models.NotificationTopic,
			IsRead:    true,
			CreatedAt: now.Add(-2 * 24 * time.Hour),
			Link:      "/subjects/math",
		},
		{
			ID:        "mock4",
			UserID:    userID,
			Title:     "3-day streak achieved!",
			Message:   "Congratulations on your consistent learning. Keep it up!",
			Type:      models.NotificationAchievement,
			IsRead:    true,
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:        "mock5",
			UserID:    userID,
			Title:     "Weekly Progress Summary",
			Message:   "You spent 2 hours learning this week across 3 subjects.",
			Type:      models.NotificationSummary,
			IsRead:    true,
			CreatedAt: now.Add(-5 * 24 * time.Hour),
			Link:      "/profile",
		},
	}

	if limit > 0 && limit < len(base) {
		base = base[:limit]
	}
	return base
}
