package controllers

import (
	"log"
	"strconv"
	"time"

	"aitutor/backend/config"
	"aitutor/backend/models"
	"aitutor/backend/services"
	"aitutor/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationsController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Notifier *services.NotificationService
	Log      *log.Logger
}

func NewNotificationsController(db *gorm.DB, cfg *config.Config, notifier *services.NotificationService, logger *log.Logger) *NotificationsController {
	return &NotificationsController{DB: db, Cfg: cfg, Notifier: notifier, Log: logger}
}

// GetNotifications godoc
// @Summary List notifications
// @Description Returns the newest notifications for the caller. Unauthenticated
// @Description requests get a deterministic demo list instead of an error.
// @Tags notifications
// @Accept json
// @Produce json
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /notifications [get]
func (nc *NotificationsController) GetNotifications(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 {
		limit = 20
	}

	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		// Демо-данные вместо 401, чтобы колокольчик не ломался без логина
		return c.JSON(fiber.Map{
			"success":    true,
			"data":       services.MockNotifications(0, limit, time.Now()),
			"isMockData": true,
		})
	}

	var notifications []models.Notification
	if err := nc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		nc.Log.Printf("Error fetching notifications for user %d: %v", userID, err)
		return c.JSON(fiber.Map{
			"success":    true,
			"data":       services.MockNotifications(userID, limit, time.Now()),
			"isMockData": true,
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       notifications,
		"isMockData": false,
	})
}

type markReadInput struct {
	ID string `json:"id"`
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param input body markReadInput true "Notification id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/read [post]
func (nc *NotificationsController) MarkRead(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input markReadInput
	if err := c.BodyParser(&input); err != nil || input.ID == "" {
		return utils.BadRequest(c, "Missing notification id")
	}

	if err := nc.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", input.ID, userID).
		Update("is_read", true).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update notification")
	}

	return c.JSON(fiber.Map{"success": true})
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/mark-all-read [post]
func (nc *NotificationsController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update notifications")
	}

	return c.JSON(fiber.Map{"success": true})
}

// SendWeeklySummary godoc
// @Summary Send weekly summary notifications
// @Description Aggregates the last week of activity and notifies every active
// @Description user who has notifications enabled. Callable by the scheduler
// @Description key or by any authenticated user.
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /notifications/send-weekly-summary [post]
func (nc *NotificationsController) SendWeeklySummary(c *fiber.Ctx) error {
	token := utils.BearerToken(c)
	if token != nc.Cfg.NotificationsAPIKey {
		if _, err := utils.ParseUserIDFromToken(token, nc.Cfg); err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)

	var records []models.UserProgress
	if err := nc.DB.Where("last_accessed >= ?", weekAgo).Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Failed to aggregate weekly activity")
	}

	// Сводка по каждому активному пользователю
	stats := make(map[uint]services.WeeklyStats)
	for _, record := range records {
		s := stats[record.UserID]
		s.MessagesCount += record.MessagesCount
		s.TopicsCompleted += len(record.CompletedList())
		stats[record.UserID] = s
	}

	success, failed := 0, 0
	for userID, userStats := range stats {
		var user models.User
		if err := nc.DB.First(&user, userID).Error; err != nil {
			nc.Log.Printf("Error loading user %d for weekly summary: %v", userID, err)
			failed++
			continue
		}
		if !user.NotificationsEnabled {
			continue
		}

		if err := nc.Notifier.NotifyWeeklySummary(userID, userStats); err != nil {
			failed++
			continue
		}
		success++
	}

	return c.JSON(fiber.Map{
		"message": "Weekly summary notifications processed",
		"stats": fiber.Map{
			"success": success,
			"errors":  failed,
			"total":   success + failed,
		},
	})
}
