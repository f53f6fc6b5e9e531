package models

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// UserStreak tracks consecutive-day logins. One record per user,
// created on first login and never deleted.
type UserStreak struct {
	gorm.Model
	UserID        uint `gorm:"uniqueIndex"`
	CurrentStreak int  `gorm:"default:0"`
	LongestStreak int  `gorm:"default:0"`
	LastLoginDate time.Time
	Milestones    string // comma-separated streak lengths already notified
}

// MilestoneList parses the stored milestone set.
func (s *UserStreak) MilestoneList() []int {
	if s.Milestones == "" {
		return nil
	}
	parts := strings.Split(s.Milestones, ",")
	milestones := make([]int, 0, len(parts))
	for _, part := range parts {
		if value, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			milestones = append(milestones, value)
		}
	}
	return milestones
}

func (s *UserStreak) HasMilestone(days int) bool {
	for _, m := range s.MilestoneList() {
		if m == days {
			return true
		}
	}
	return false
}

// AddMilestone records a reached milestone; duplicates are ignored.
func (s *UserStreak) AddMilestone(days int) {
	if s.HasMilestone(days) {
		return
	}
	if s.Milestones == "" {
		s.Milestones = strconv.Itoa(days)
		return
	}
	s.Milestones += "," + strconv.Itoa(days)
}
