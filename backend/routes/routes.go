package routes

import (
	"log"

	"aitutor/backend/config"
	"aitutor/backend/controllers"
	"aitutor/backend/middleware"
	"aitutor/backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Shared services
	notifier := services.NewNotificationService(db, logger)
	tracker := services.NewStreakTracker(db, notifier, logger)
	updater := services.NewProgressUpdater(db, notifier, logger)
	chatClient := services.NewGeminiClient(cfg, logger)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, tracker)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Subject catalog routes
	subjectsController := controllers.NewSubjectsController(db, cfg)
	app.Get("/api/subjects", authMiddleware, subjectsController.GetSubjects)
	app.Get("/api/subjects/:id", authMiddleware, subjectsController.GetSubjectDetails)

	// Chat routes
	chatController := controllers.NewChatController(db, cfg, chatClient, updater, logger)
	app.Post("/api/chat", authMiddleware, chatController.SendMessage)
	app.Get("/api/chat/history", authMiddleware, chatController.GetHistory)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg, tracker)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/progress/:subjectId", authMiddleware, progressController.GetSubjectProgress)
	app.Get("/api/streak", authMiddleware, progressController.GetStreak)

	// Recommendation routes
	recommendationsController := controllers.NewRecommendationsController(db, cfg)
	app.Get("/api/recommendations", authMiddleware, recommendationsController.GetRecommendations)

	// Notification routes. The list endpoint handles missing credentials
	// itself (mock fallback), so it skips the auth middleware.
	notificationsController := controllers.NewNotificationsController(db, cfg, notifier, logger)
	app.Get("/api/notifications", notificationsController.GetNotifications)
	app.Post("/api/notifications/read", authMiddleware, notificationsController.MarkRead)
	app.Post("/api/notifications/mark-all-read", authMiddleware, notificationsController.MarkAllRead)
	app.Post("/api/notifications/send-weekly-summary", notificationsController.SendWeeklySummary)
}
