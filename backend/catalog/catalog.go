// Package catalog holds the static curriculum: a fixed tree of
// Subject -> Topic -> SubTopic -> Resource compiled into the application.
package catalog

// Difficulty levels
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Advanced     = "advanced"
)

// Resource types
const (
	ResourceArticle     = "article"
	ResourceVideo       = "video"
	ResourceInteractive = "interactive"
	ResourcePractice    = "practice"
	ResourceQuiz        = "quiz"
)

type Resource struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	URL             string `json:"url,omitempty"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Difficulty      string `json:"difficulty"`
}

type SubTopic struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	KeyPoints   []string   `json:"keyPoints"`
	Resources   []Resource `json:"resources"`
}

type Topic struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Difficulty           string     `json:"difficulty"`
	PrerequisiteTopicIDs []string   `json:"prerequisiteTopicIds,omitempty"`
	SubTopics            []SubTopic `json:"subtopics"`
}

type Subject struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Topics      []Topic `json:"topics"`
}

// FindSubject returns the subject with the given id, or nil.
func FindSubject(subjectID string) *Subject {
	for i := range Subjects {
		if Subjects[i].ID == subjectID {
			return &Subjects[i]
		}
	}
	return nil
}

func (s *Subject) FindTopic(topicID string) *Topic {
	for i := range s.Topics {
		if s.Topics[i].ID == topicID {
			return &s.Topics[i]
		}
	}
	return nil
}

// FindSubTopic searches every topic of the subject.
func (s *Subject) FindSubTopic(subtopicID string) (*Topic, *SubTopic) {
	for i := range s.Topics {
		for j := range s.Topics[i].SubTopics {
			if s.Topics[i].SubTopics[j].ID == subtopicID {
				return &s.Topics[i], &s.Topics[i].SubTopics[j]
			}
		}
	}
	return nil, nil
}

// SubTopicIDs lists the subtopic ids of a topic in catalog order.
func (t *Topic) SubTopicIDs() []string {
	ids := make([]string, 0, len(t.SubTopics))
	for _, st := range t.SubTopics {
		ids = append(ids, st.ID)
	}
	return ids
}

// TopicAvailable reports whether a topic is unlocked for a user: every
// prerequisite topic must have at least one completed subtopic. A missing
// prerequisite topic counts as met.
func TopicAvailable(subject *Subject, topic *Topic, completedTopics []string) bool {
	if len(topic.PrerequisiteTopicIDs) == 0 {
		return true
	}

	completed := make(map[string]bool, len(completedTopics))
	for _, id := range completedTopics {
		completed[id] = true
	}

	for _, prereqID := range topic.PrerequisiteTopicIDs {
		prereq := subject.FindTopic(prereqID)
		if prereq == nil {
			continue
		}

		met := false
		for _, subtopicID := range prereq.SubTopicIDs() {
			if completed[subtopicID] {
				met = true
				break
			}
		}
		if !met {
			return false
		}
	}

	return true
}
