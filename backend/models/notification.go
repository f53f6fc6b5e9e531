package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationAchievement = "achievement"
	NotificationStreak      = "streak"
	NotificationMilestone   = "milestone"
	NotificationTopic       = "topic"
	NotificationSummary     = "summary"
	NotificationSystem      = "system"
)

// Notification is created by server-side triggers (streak milestones, topic
// completions, achievements, weekly summaries) and only ever mutated by
// mark-read operations.
type Notification struct {
	ID        string `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index" json:"userId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `gorm:"default:false" json:"isRead"`
	Link      string `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
