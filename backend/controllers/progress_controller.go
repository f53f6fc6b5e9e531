package controllers

import (
	"errors"

	"aitutor/backend/config"
	"aitutor/backend/models"
	"aitutor/backend/services"
	"aitutor/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Tracker *services.StreakTracker
}

func NewProgressController(db *gorm.DB, cfg *config.Config, tracker *services.StreakTracker) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Tracker: tracker}
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns the caller's progress records across all subjects
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var records []models.UserProgress
	if err := pc.DB.Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress data")
	}

	result := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		result = append(result, progressView(record))
	}

	return c.JSON(fiber.Map{
		"progress": result,
	})
}

// GetSubjectProgress godoc
// @Summary Get progress for one subject
// @Tags progress
// @Accept json
// @Produce json
// @Param subjectId path string true "Subject id"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/{subjectId} [get]
func (pc *ProgressController) GetSubjectProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var record models.UserProgress
	err = pc.DB.Where("user_id = ? AND subject_id = ?", userID, c.Params("subjectId")).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "No progress for subject")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch progress data")
	}

	return c.JSON(progressView(record))
}

// GetStreak godoc
// @Summary Get login streak
// @Description Returns current/longest streak and reached milestones
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /streak [get]
func (pc *ProgressController) GetStreak(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	streak, err := pc.Tracker.GetStreak(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch streak")
	}
	if streak == nil {
		return c.JSON(fiber.Map{
			"current_streak": 0,
			"longest_streak": 0,
			"milestones":     []int{},
		})
	}

	milestones := streak.MilestoneList()
	if milestones == nil {
		milestones = []int{}
	}

	return c.JSON(fiber.Map{
		"current_streak": streak.CurrentStreak,
		"longest_streak": streak.LongestStreak,
		"last_login":     streak.LastLoginDate,
		"milestones":     milestones,
	})
}

func progressView(record models.UserProgress) fiber.Map {
	completed := record.CompletedList()
	if completed == nil {
		completed = []string{}
	}
	return fiber.Map{
		"subject_id":       record.SubjectID,
		"messages_count":   record.MessagesCount,
		"completed_topics": completed,
		"last_accessed":    record.LastAccessed,
	}
}
