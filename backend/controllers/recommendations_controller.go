package controllers

import (
	"strconv"

	"aitutor/backend/config"
	"aitutor/backend/models"
	"aitutor/backend/services"
	"aitutor/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecommendationsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRecommendationsController(db *gorm.DB, cfg *config.Config) *RecommendationsController {
	return &RecommendationsController{DB: db, Cfg: cfg}
}

// GetRecommendations godoc
// @Summary Get content recommendations
// @Description Proposes next topics, subtopics, and resources from the catalog
// @Tags recommendations
// @Accept json
// @Produce json
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /recommendations [get]
func (rc *RecommendationsController) GetRecommendations(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, rc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "5"))
	if limit < 1 {
		limit = 5
	}

	var records []models.UserProgress
	// Ошибка чтения прогресса деградирует до пустого списка
	rc.DB.Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&records)

	snapshots := make([]services.ProgressSnapshot, 0, len(records))
	for _, record := range records {
		snapshots = append(snapshots, services.ProgressSnapshot{
			SubjectID:       record.SubjectID,
			CompletedTopics: record.CompletedList(),
		})
	}

	recommendations := services.Recommend(snapshots, limit)

	return c.JSON(fiber.Map{
		"recommendations": recommendations,
	})
}
