package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSubject(t *testing.T) {
	subject := FindSubject("math")
	require.NotNil(t, subject)
	assert.Equal(t, "Mathematics", subject.Name)

	assert.Nil(t, FindSubject("alchemy"))
}

func TestFindSubTopic(t *testing.T) {
	subject := FindSubject("math")

	topic, subtopic := subject.FindSubTopic("math-basics-fractions")
	require.NotNil(t, subtopic)
	assert.Equal(t, "Fractions and Decimals", subtopic.Title)
	assert.Equal(t, "math-basics", topic.ID)

	topic, subtopic = subject.FindSubTopic("nope")
	assert.Nil(t, topic)
	assert.Nil(t, subtopic)
}

func TestTopicAvailable(t *testing.T) {
	subject := FindSubject("math")
	basics := subject.FindTopic("math-basics")
	algebra := subject.FindTopic("math-algebra")
	require.NotNil(t, basics)
	require.NotNil(t, algebra)

	// No prerequisites: always available
	assert.True(t, TopicAvailable(subject, basics, nil))

	// Prerequisite topic needs at least one completed subtopic
	assert.False(t, TopicAvailable(subject, algebra, nil))
	assert.False(t, TopicAvailable(subject, algebra, []string{"science-physics-motion"}))
	assert.True(t, TopicAvailable(subject, algebra, []string{"math-basics-operations"}))
}

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, subject := range Subjects {
		require.NotEmpty(t, subject.ID)
		for _, topic := range subject.Topics {
			assert.False(t, seen[topic.ID], "duplicate topic id %s", topic.ID)
			seen[topic.ID] = true

			// Every prerequisite names a topic in the same subject
			for _, prereq := range topic.PrerequisiteTopicIDs {
				assert.NotNil(t, subject.FindTopic(prereq), "missing prerequisite %s for %s", prereq, topic.ID)
			}

			for _, subtopic := range topic.SubTopics {
				assert.False(t, seen[subtopic.ID], "duplicate subtopic id %s", subtopic.ID)
				seen[subtopic.ID] = true
				assert.NotEmpty(t, subtopic.Resources, "subtopic %s has no resources", subtopic.ID)
			}
		}
	}
}
