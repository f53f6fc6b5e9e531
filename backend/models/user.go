package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string

	// Notification preferences. No default tag on NotificationsEnabled:
	// gorm drops zero values for defaulted columns, turning opt-outs into
	// true. Registration sets the initial value instead.
	NotificationsEnabled bool
	EmailUpdates         bool
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}
