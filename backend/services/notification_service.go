package services

import (
	"fmt"
	"log"
	"strings"

	"aitutor/backend/models"

	"gorm.io/gorm"
)

// NotificationService creates the server-side triggered notifications
// (streaks, topic completions, achievements, weekly summaries).
type NotificationService struct {
	DB  *gorm.DB
	Log *log.Logger
}

func NewNotificationService(db *gorm.DB, logger *log.Logger) *NotificationService {
	return &NotificationService{DB: db, Log: logger}
}

func (ns *NotificationService) create(notification *models.Notification) error {
	if err := ns.DB.Create(notification).Error; err != nil {
		ns.Log.Printf("Error creating %s notification for user %d: %v", notification.Type, notification.UserID, err)
		return err
	}
	return nil
}

// NotifyStreak creates a streak notification. Gating on milestone values is
// the streak tracker's job; this fires unconditionally.
func (ns *NotificationService) NotifyStreak(userID uint, streakDays int) error {
	title := fmt.Sprintf("%d Day Streak!", streakDays)
	message := fmt.Sprintf("Congratulations! You've maintained a %d-day learning streak. Keep up the great work!", streakDays)
	if streakDays == 1 {
		title = "You started a learning streak!"
		message = "Keep learning daily to build your streak."
	}

	return ns.create(&models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    models.NotificationStreak,
	})
}

func (ns *NotificationService) NotifyTopicCompletion(userID uint, subjectName, topicName string) error {
	return ns.create(&models.Notification{
		UserID:  userID,
		Title:   "Topic Completed!",
		Message: fmt.Sprintf("You've completed the %q topic in %s. Keep learning to master this subject!", topicName, subjectName),
		Type:    models.NotificationMilestone,
		Link:    "/subjects/" + strings.ToLower(subjectName),
	})
}

func (ns *NotificationService) NotifyAchievement(userID uint, achievementName, description string) error {
	return ns.create(&models.Notification{
		UserID:  userID,
		Title:   "Achievement Unlocked: " + achievementName,
		Message: description,
		Type:    models.NotificationAchievement,
	})
}

// WeeklyStats aggregates a user's activity over the trailing week.
type WeeklyStats struct {
	MessagesCount   int `json:"messagesCount"`
	TopicsCompleted int `json:"topicsCompleted"`
}

func (ns *NotificationService) NotifyWeeklySummary(userID uint, stats WeeklyStats) error {
	return ns.create(&models.Notification{
		UserID:  userID,
		Title:   "Your Weekly Learning Summary",
		Message: fmt.Sprintf("This week you exchanged %d messages and completed %d topics.", stats.MessagesCount, stats.TopicsCompleted),
		Type:    models.NotificationSummary,
	})
}
