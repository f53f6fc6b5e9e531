package controllers

import (
	"context"
	"errors"
	"log"
	"time"

	"aitutor/backend/config"
	"aitutor/backend/models"
	"aitutor/backend/services"
	"aitutor/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChatController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Chat    services.ChatClient
	Updater *services.ProgressUpdater
	Log     *log.Logger
}

func NewChatController(db *gorm.DB, cfg *config.Config, chat services.ChatClient, updater *services.ProgressUpdater, logger *log.Logger) *ChatController {
	return &ChatController{DB: db, Cfg: cfg, Chat: chat, Updater: updater, Log: logger}
}

type ChatInput struct {
	Messages []services.Message `json:"messages"`
	Subject  string             `json:"subject"`
}

// SendMessage godoc
// @Summary Chat with the AI tutor
// @Description Sends the conversation to the model and returns the reply
// @Tags chat
// @Accept json
// @Produce json
// @Param input body ChatInput true "Conversation"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat [post]
func (cc *ChatController) SendMessage(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input ChatInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if len(input.Messages) == 0 {
		return utils.BadRequest(c, "Invalid messages format")
	}
	for _, message := range input.Messages {
		switch message.Role {
		case "user", "assistant", "system":
		default:
			return utils.BadRequest(c, "Invalid message role: "+message.Role)
		}
	}
	if input.Messages[len(input.Messages)-1].Role != "user" {
		return utils.BadRequest(c, "Last message must be from the user")
	}
	if input.Subject == "" {
		return utils.BadRequest(c, "Missing subject")
	}

	// Client-side timeout only; the provider call is not cancelled upstream.
	ctx, cancel := context.WithTimeout(c.Context(), time.Duration(cc.Cfg.ChatTimeoutSec)*time.Second)
	defer cancel()

	reply, err := cc.Chat.Generate(ctx, input.Messages, input.Subject)
	if err != nil {
		if errors.Is(err, services.ErrChatTimeout) || errors.Is(err, context.DeadlineExceeded) {
			return utils.Error(c, fiber.StatusGatewayTimeout, errors.New("Request timed out"))
		}
		cc.Log.Printf("Error in chat completion: %v", err)
		return utils.InternalServerError(c, "Failed to get response from AI")
	}

	userMessage := input.Messages[len(input.Messages)-1]
	if err := cc.saveExchange(userID, input.Subject, userMessage.Content, reply); err != nil {
		// Persistence problems must not block the reply
		cc.Log.Printf("Error saving chat exchange: %v", err)
	}

	// Track progress in the background, best effort
	go func() {
		if _, err := cc.Updater.DetectAndRecord(userID, input.Subject, reply); err != nil {
			cc.Log.Printf("Error detecting topics: %v", err)
		}
	}()

	return c.JSON(fiber.Map{
		"message": reply,
	})
}

// saveExchange persists both turns and bumps the progress counters inside
// one transaction, so a concurrent chat session cannot lose an increment.
func (cc *ChatController) saveExchange(userID uint, subjectID, userText, replyText string) error {
	return cc.DB.Transaction(func(tx *gorm.DB) error {
		messages := []models.ChatMessage{
			{UserID: userID, SubjectID: subjectID, Role: "user", Content: userText},
			{UserID: userID, SubjectID: subjectID, Role: "assistant", Content: replyText},
		}
		if err := tx.Create(&messages).Error; err != nil {
			return err
		}

		var progress models.UserProgress
		err := tx.Where("user_id = ? AND subject_id = ?", userID, subjectID).First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = models.UserProgress{
				UserID:        userID,
				SubjectID:     subjectID,
				MessagesCount: len(messages),
				LastAccessed:  time.Now(),
			}
			return tx.Create(&progress).Error
		}
		if err != nil {
			return err
		}

		progress.MessagesCount += len(messages)
		progress.LastAccessed = time.Now()
		return tx.Save(&progress).Error
	})
}

// GetHistory godoc
// @Summary Get chat history
// @Description Returns the conversation for a subject, oldest first
// @Tags chat
// @Accept json
// @Produce json
// @Param subject query string true "Subject id"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chat/history [get]
func (cc *ChatController) GetHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	subjectID := c.Query("subject")
	if subjectID == "" {
		return utils.BadRequest(c, "Missing subject")
	}

	var messages []models.ChatMessage
	if err := cc.DB.Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch chat history")
	}

	result := make([]fiber.Map, 0, len(messages))
	for _, message := range messages {
		result = append(result, fiber.Map{
			"id":        message.ID,
			"role":      message.Role,
			"content":   message.Content,
			"timestamp": message.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"messages": result,
	})
}
