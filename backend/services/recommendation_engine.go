package services

import (
	"strings"

	"aitutor/backend/catalog"
)

// ContentRecommendation is derived per request from the static catalog and a
// progress snapshot; it is never persisted.
type ContentRecommendation struct {
	Type        string `json:"type"` // topic, subtopic, resource
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	ParentTitle string `json:"parentTitle,omitempty"`
	Subject     string `json:"subject"`
	SubjectID   string `json:"subjectId"`
	Reason      string `json:"reason"`
}

// ProgressSnapshot is the caller-supplied view of one progress record.
type ProgressSnapshot struct {
	SubjectID       string
	CompletedTopics []string
}

// Recommend proposes next topics, subtopics, and resources. It is a pure
// function of the snapshot and the catalog: no I/O, no randomness, and the
// output is deterministic for a given input.
//
// Priority order: fresh available topics in subjects the user has touched
// (at most two per subject, each with its first subtopic), then
// continue-where-you-left-off subtopics, then beginner topics from untouched
// subjects, then beginner resources as filler.
func Recommend(progress []ProgressSnapshot, limit int) []ContentRecommendation {
	if limit <= 0 {
		limit = 5
	}

	var recommendations []ContentRecommendation

	touched := make(map[string]bool, len(progress))
	completedBySubject := make(map[string][]string, len(progress))
	for _, snapshot := range progress {
		touched[snapshot.SubjectID] = true
		completedBySubject[snapshot.SubjectID] = snapshot.CompletedTopics
	}

	for _, snapshot := range progress {
		subject := catalog.FindSubject(snapshot.SubjectID)
		if subject == nil {
			continue
		}

		completed := completedBySubject[subject.ID]

		// Topics with no completed subtopic yet, prerequisites satisfied
		var available []catalog.Topic
		for _, topic := range subject.Topics {
			if countCompleted(topic, completed) > 0 {
				continue
			}
			if catalog.TopicAvailable(subject, &topic, completed) {
				available = append(available, topic)
			}
		}
		if len(available) > 2 {
			available = available[:2]
		}

		for _, topic := range available {
			recommendations = append(recommendations, ContentRecommendation{
				Type:        "topic",
				ID:          topic.ID,
				Title:       topic.Title,
				Description: topic.Description,
				Difficulty:  topic.Difficulty,
				Subject:     subject.Name,
				SubjectID:   subject.ID,
				Reason:      "Based on your current progress",
			})

			if len(topic.SubTopics) > 0 {
				first := topic.SubTopics[0]
				recommendations = append(recommendations, ContentRecommendation{
					Type:        "subtopic",
					ID:          first.ID,
					Title:       first.Title,
					Description: first.Description,
					Difficulty:  topic.Difficulty,
					ParentTitle: topic.Title,
					Subject:     subject.Name,
					SubjectID:   subject.ID,
					Reason:      "Next step in your learning path",
				})
			}
		}

		// Partially completed topics: pick up the next subtopic in catalog order
		for _, topic := range subject.Topics {
			done := countCompleted(topic, completed)
			if done == 0 || done == len(topic.SubTopics) {
				continue
			}

			for _, subtopic := range topic.SubTopics {
				if containsID(completed, subtopic.ID) {
					continue
				}
				recommendations = append(recommendations, ContentRecommendation{
					Type:        "subtopic",
					ID:          subtopic.ID,
					Title:       subtopic.Title,
					Description: subtopic.Description,
					Difficulty:  topic.Difficulty,
					ParentTitle: topic.Title,
					Subject:     subject.Name,
					SubjectID:   subject.ID,
					Reason:      "Continue where you left off",
				})
				break
			}
		}
	}

	// Untouched subjects: suggest their first beginner topic
	if len(recommendations) < limit {
		for _, subject := range catalog.Subjects {
			if touched[subject.ID] {
				continue
			}
			for _, topic := range subject.Topics {
				if topic.Difficulty != catalog.Beginner {
					continue
				}
				recommendations = append(recommendations, ContentRecommendation{
					Type:        "topic",
					ID:          topic.ID,
					Title:       topic.Title,
					Description: topic.Description,
					Difficulty:  topic.Difficulty,
					Subject:     subject.Name,
					SubjectID:   subject.ID,
					Reason:      "Explore a new subject",
				})
				break
			}
		}
	}

	// Catch-all filler: one beginner resource per subject
	if len(recommendations) < limit {
		for _, subject := range catalog.Subjects {
			for _, topic := range subject.Topics {
				if topic.Difficulty != catalog.Beginner || len(topic.SubTopics) == 0 {
					continue
				}
				subtopic := topic.SubTopics[0]
				if len(subtopic.Resources) == 0 {
					break
				}
				resource := subtopic.Resources[0]
				recommendations = append(recommendations, ContentRecommendation{
					Type:        "resource",
					ID:          subtopic.ID + "-" + slugify(resource.Title),
					Title:       resource.Title,
					Description: resource.Description,
					Difficulty:  resource.Difficulty,
					ParentTitle: subtopic.Title,
					Subject:     subject.Name,
					SubjectID:   subject.ID,
					Reason:      "Popular resource for beginners",
				})
				break
			}
		}
	}

	return dedupeByID(recommendations, limit)
}

func countCompleted(topic catalog.Topic, completed []string) int {
	count := 0
	for _, subtopic := range topic.SubTopics {
		if containsID(completed, subtopic.ID) {
			count++
		}
	}
	return count
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// dedupeByID keeps the first occurrence of each id, then truncates.
func dedupeByID(items []ContentRecommendation, limit int) []ContentRecommendation {
	seen := make(map[string]bool, len(items))
	unique := make([]ContentRecommendation, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		unique = append(unique, item)
	}
	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
