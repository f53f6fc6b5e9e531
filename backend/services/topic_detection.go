package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"aitutor/backend/catalog"
	"aitutor/backend/models"

	"gorm.io/gorm"
)

// Achievement thresholds on the cumulative completed-topic count per subject.
var achievementThresholds = []struct {
	Count int
	Name  string
	Text  string
}{
	{5, "Fast Learner", "You've completed 5 topics in %s. Keep up the great work!"},
	{10, "Knowledge Explorer", "You've completed 10 topics in %s. You're making excellent progress!"},
	{25, "Master Student", "You've completed 25 topics in %s. You're becoming a master!"},
}

// DetectTopics scans chat text for the subject's topic keywords and returns
// the matched tags in sorted order. Matching is a lower-cased substring scan
// with no word-boundary check ("cell" matches "excellent"); this mirrors the
// product's shipped behavior.
func DetectTopics(message, subjectID string) []string {
	lower := strings.ToLower(message)
	keywords := catalog.SubjectKeywords[subjectID]

	var detected []string
	for tag, tagKeywords := range keywords {
		for _, keyword := range tagKeywords {
			if strings.Contains(lower, keyword) {
				detected = append(detected, tag)
				break
			}
		}
	}

	sort.Strings(detected)
	return detected
}

// ProgressUpdater applies detected topic tags to the per-subject progress
// record and fires completion/achievement notifications.
type ProgressUpdater struct {
	DB       *gorm.DB
	Notifier *NotificationService
	Log      *log.Logger
}

func NewProgressUpdater(db *gorm.DB, notifier *NotificationService, logger *log.Logger) *ProgressUpdater {
	return &ProgressUpdater{DB: db, Notifier: notifier, Log: logger}
}

// DetectAndRecord runs detection over an AI reply and records the results.
// Called after every chat exchange, usually on a background goroutine.
func (pu *ProgressUpdater) DetectAndRecord(userID uint, subjectID, message string) ([]string, error) {
	detected := DetectTopics(message, subjectID)
	if len(detected) == 0 {
		return nil, nil
	}
	return detected, pu.RecordDetections(userID, subjectID, detected)
}

// RecordDetections appends newly-detected tags to the progress record, fires
// a topic notification for every tag naming a real subtopic, and checks the
// cumulative achievement thresholds. The threshold guard
// (prior < threshold <= new) makes each achievement fire exactly once.
func (pu *ProgressUpdater) RecordDetections(userID uint, subjectID string, tags []string) error {
	var progress models.UserProgress
	err := pu.DB.Where("user_id = ? AND subject_id = ?", userID, subjectID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First interaction with the subject: create the record without
		// firing notifications.
		progress = models.UserProgress{
			UserID:       userID,
			SubjectID:    subjectID,
			LastAccessed: time.Now(),
		}
		for _, tag := range tags {
			progress.AddCompleted(tag)
		}
		return pu.DB.Create(&progress).Error
	}
	if err != nil {
		return err
	}

	existing := progress.CompletedList()
	var newTags []string
	for _, tag := range tags {
		if !progress.HasCompleted(tag) {
			newTags = append(newTags, tag)
		}
	}
	if len(newTags) == 0 {
		return nil
	}

	subject := catalog.FindSubject(subjectID)
	if subject != nil {
		for _, tag := range newTags {
			if _, subtopic := subject.FindSubTopic(tag); subtopic != nil {
				if err := pu.Notifier.NotifyTopicCompletion(userID, subject.Name, subtopic.Title); err != nil {
					pu.Log.Printf("Error sending topic completion notification: %v", err)
				}
			}
		}

		priorCount := len(existing)
		newCount := priorCount + len(newTags)
		for _, threshold := range achievementThresholds {
			if priorCount < threshold.Count && newCount >= threshold.Count {
				description := fmt.Sprintf(threshold.Text, subject.Name)
				if err := pu.Notifier.NotifyAchievement(userID, threshold.Name, description); err != nil {
					pu.Log.Printf("Error sending achievement notification: %v", err)
				}
			}
		}
	}

	for _, tag := range newTags {
		progress.AddCompleted(tag)
	}
	return pu.DB.Save(&progress).Error
}
