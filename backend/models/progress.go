package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// UserProgress is the per-(user, subject) progress record. It is created on
// the first interaction with a subject and mutated on every chat message and
// topic completion.
type UserProgress struct {
	gorm.Model
	UserID          uint   `gorm:"index:idx_user_subject,unique"`
	SubjectID       string `gorm:"index:idx_user_subject,unique"`
	MessagesCount   int    `gorm:"default:0"`
	LastAccessed    time.Time
	CompletedTopics string // comma-separated subtopic/tag ids
}

// CompletedList parses the stored completed-topic set.
func (p *UserProgress) CompletedList() []string {
	if p.CompletedTopics == "" {
		return nil
	}
	parts := strings.Split(p.CompletedTopics, ",")
	topics := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			topics = append(topics, trimmed)
		}
	}
	return topics
}

func (p *UserProgress) HasCompleted(topicID string) bool {
	for _, id := range p.CompletedList() {
		if id == topicID {
			return true
		}
	}
	return false
}

// AddCompleted appends a topic id to the completed set; duplicates are ignored.
func (p *UserProgress) AddCompleted(topicID string) {
	if p.HasCompleted(topicID) {
		return
	}
	if p.CompletedTopics == "" {
		p.CompletedTopics = topicID
		return
	}
	p.CompletedTopics += "," + topicID
}

type ChatMessage struct {
	gorm.Model
	UserID    uint   `gorm:"index"`
	SubjectID string `gorm:"index"`
	Role      string // user, assistant
	Content   string
}
