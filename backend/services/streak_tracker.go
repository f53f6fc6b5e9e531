package services

import (
	"errors"
	"log"
	"time"

	"aitutor/backend/models"

	"gorm.io/gorm"
)

// StreakMilestones are the streak lengths that trigger a one-time
// notification per user.
var StreakMilestones = []int{3, 5, 7, 10, 14, 21, 30, 60, 90, 100, 365}

// StreakTracker maintains the consecutive-day login counter. Errors never
// propagate to callers: UpdateLoginStreak returns 0 and the caller treats
// that as "streak unknown".
type StreakTracker struct {
	DB       *gorm.DB
	Notifier *NotificationService
	Log      *log.Logger
	Now      func() time.Time
}

func NewStreakTracker(db *gorm.DB, notifier *NotificationService, logger *log.Logger) *StreakTracker {
	return &StreakTracker{DB: db, Notifier: notifier, Log: logger, Now: time.Now}
}

// UpdateLoginStreak is invoked once per authenticated session start. Streaks
// compare calendar days (local midnight), not exact timestamps, so reloads on
// the same day are idempotent.
func (st *StreakTracker) UpdateLoginStreak(userID uint) int {
	today := midnight(st.Now())

	var streak models.UserStreak
	err := st.DB.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = models.UserStreak{
			UserID:        userID,
			CurrentStreak: 1,
			LongestStreak: 1,
			LastLoginDate: today,
		}
		if err := st.DB.Create(&streak).Error; err != nil {
			st.Log.Printf("Error creating streak for user %d: %v", userID, err)
			return 0
		}
		// First-ever login, day 1 notification
		if err := st.Notifier.NotifyStreak(userID, 1); err != nil {
			st.Log.Printf("Error sending first-login streak notification: %v", err)
		}
		return 1
	}
	if err != nil {
		st.Log.Printf("Error loading streak for user %d: %v", userID, err)
		return 0
	}

	diffDays := daysBetween(midnight(streak.LastLoginDate), today)

	// Same calendar day, nothing to do
	if diffDays == 0 {
		return streak.CurrentStreak
	}

	increased := false
	if diffDays == 1 {
		streak.CurrentStreak++
		increased = true
	} else {
		// Gap of two or more days resets the counter
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastLoginDate = today

	notifyMilestone := false
	if increased && isStreakMilestone(streak.CurrentStreak) && !streak.HasMilestone(streak.CurrentStreak) {
		// The persisted milestone set guarantees at most one notification
		// per milestone value, even across restarts.
		streak.AddMilestone(streak.CurrentStreak)
		notifyMilestone = true
	}

	// Persist before notifying: a failed save must not leave a milestone
	// notification without its milestone record.
	if err := st.DB.Save(&streak).Error; err != nil {
		st.Log.Printf("Error saving streak for user %d: %v", userID, err)
		return 0
	}

	if notifyMilestone {
		if err := st.Notifier.NotifyStreak(userID, streak.CurrentStreak); err != nil {
			st.Log.Printf("Error sending streak milestone notification: %v", err)
		}
	}

	return streak.CurrentStreak
}

// GetStreak loads the caller's streak record, or nil if none exists yet.
func (st *StreakTracker) GetStreak(userID uint) (*models.UserStreak, error) {
	var streak models.UserStreak
	err := st.DB.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func isStreakMilestone(days int) bool {
	for _, m := range StreakMilestones {
		if m == days {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// daysBetween truncates, so the 23-hour day a DST spring-forward produces
// counts as zero days and the streak advances on the following login instead.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
