package controllers

import (
	"strings"

	"aitutor/backend/catalog"
	"aitutor/backend/config"
	"aitutor/backend/models"
	"aitutor/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubjectsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSubjectsController(db *gorm.DB, cfg *config.Config) *SubjectsController {
	return &SubjectsController{DB: db, Cfg: cfg}
}

// GetSubjects возвращает список предметов по критериям поиска
func (sc *SubjectsController) GetSubjects(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	search := strings.ToLower(c.Query("search"))
	difficulty := c.Query("difficulty")

	var result []fiber.Map
	for i := range catalog.Subjects {
		subject := &catalog.Subjects[i]

		if search != "" &&
			!strings.Contains(strings.ToLower(subject.Name), search) &&
			!strings.Contains(strings.ToLower(subject.Description), search) {
			continue
		}

		topicCount := 0
		for _, topic := range subject.Topics {
			if difficulty != "" && topic.Difficulty != difficulty {
				continue
			}
			topicCount++
		}
		if difficulty != "" && topicCount == 0 {
			continue
		}

		// Прогресс пользователя по предмету
		var progress models.UserProgress
		sc.DB.Where("user_id = ? AND subject_id = ?", userID, subject.ID).First(&progress)

		result = append(result, fiber.Map{
			"id":               subject.ID,
			"name":             subject.Name,
			"description":      subject.Description,
			"color":            subject.Color,
			"topics":           topicCount,
			"topic_names":      catalog.SubjectTopicNames[subject.ID],
			"messages_count":   progress.MessagesCount,
			"completed_topics": len(progress.CompletedList()),
		})
	}

	return c.JSON(result)
}

// GetSubjectDetails возвращает дерево тем предмета с доступностью
func (sc *SubjectsController) GetSubjectDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	subject := catalog.FindSubject(c.Params("id"))
	if subject == nil {
		return utils.NotFound(c, "Subject not found")
	}

	var progress models.UserProgress
	sc.DB.Where("user_id = ? AND subject_id = ?", userID, subject.ID).First(&progress)
	completed := progress.CompletedList()

	topics := make([]fiber.Map, 0, len(subject.Topics))
	for i := range subject.Topics {
		topic := &subject.Topics[i]

		subtopics := make([]fiber.Map, 0, len(topic.SubTopics))
		for _, subtopic := range topic.SubTopics {
			subtopics = append(subtopics, fiber.Map{
				"id":          subtopic.ID,
				"title":       subtopic.Title,
				"description": subtopic.Description,
				"key_points":  subtopic.KeyPoints,
				"resources":   subtopic.Resources,
				"completed":   progress.HasCompleted(subtopic.ID),
			})
		}

		topics = append(topics, fiber.Map{
			"id":            topic.ID,
			"title":         topic.Title,
			"description":   topic.Description,
			"difficulty":    topic.Difficulty,
			"prerequisites": topic.PrerequisiteTopicIDs,
			"available":     catalog.TopicAvailable(subject, topic, completed),
			"subtopics":     subtopics,
		})
	}

	return c.JSON(fiber.Map{
		"subject": fiber.Map{
			"id":          subject.ID,
			"name":        subject.Name,
			"description": subject.Description,
			"color":       subject.Color,
			"topics":      topics,
		},
		"progress": fiber.Map{
			"messages_count":   progress.MessagesCount,
			"completed_topics": completed,
			"last_accessed":    progress.LastAccessed,
		},
	})
}
