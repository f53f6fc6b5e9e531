package controllers

import (
	"net/http"
	"testing"
	"time"

	"aitutor/backend/config"
	"aitutor/backend/models"
	"aitutor/backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationsApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	testLogger := newTestLogger()
	notifier := services.NewNotificationService(db, testLogger)

	app := fiber.New()
	controller := NewNotificationsController(db, cfg, notifier, testLogger)
	app.Get("/api/notifications", controller.GetNotifications)
	app.Post("/api/notifications/read", controller.MarkRead)
	app.Post("/api/notifications/mark-all-read", controller.MarkAllRead)
	app.Post("/api/notifications/send-weekly-summary", controller.SendWeeklySummary)
	return app, db, cfg
}

func TestGetNotificationsMockFallback(t *testing.T) {
	app, _, _ := newNotificationsApp(t)

	resp, body := doRequest(t, app, jsonRequest("GET", "/api/notifications", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["isMockData"])
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 5)
}

func TestGetNotificationsAuthenticated(t *testing.T) {
	app, db, cfg := newNotificationsApp(t)

	require.NoError(t, db.Create(&[]models.Notification{
		{UserID: 1, Title: "Topic Completed!", Type: models.NotificationMilestone},
		{UserID: 1, Title: "3 Day Streak!", Type: models.NotificationStreak},
		{UserID: 2, Title: "Someone else's", Type: models.NotificationSystem},
	}).Error)

	req := jsonRequest("GET", "/api/notifications?limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, body := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isMockData"])

	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGetNotificationsLimit(t *testing.T) {
	app, db, cfg := newNotificationsApp(t)

	for i := 0; i < 30; i++ {
		require.NoError(t, db.Create(&models.Notification{
			UserID: 1,
			Title:  "n",
			Type:   models.NotificationSystem,
		}).Error)
	}

	req := jsonRequest("GET", "/api/notifications?limit=20", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	_, body := doRequest(t, app, req)
	data := body["data"].([]interface{})
	assert.Len(t, data, 20)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	app, db, cfg := newNotificationsApp(t)

	mine := models.Notification{UserID: 1, Title: "mine", Type: models.NotificationSystem}
	theirs := models.Notification{UserID: 2, Title: "theirs", Type: models.NotificationSystem}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&theirs).Error)

	req := jsonRequest("POST", "/api/notifications/read", map[string]string{"id": mine.ID})
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))
	resp, _ := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.Notification
	require.NoError(t, db.First(&reloaded, "id = ?", mine.ID).Error)
	assert.True(t, reloaded.IsRead)

	// Another user's id is silently ignored
	req = jsonRequest("POST", "/api/notifications/read", map[string]string{"id": theirs.ID})
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))
	doRequest(t, app, req)

	reloaded = models.Notification{}
	require.NoError(t, db.First(&reloaded, "id = ?", theirs.ID).Error)
	assert.False(t, reloaded.IsRead)
}

func TestMarkAllRead(t *testing.T) {
	app, db, cfg := newNotificationsApp(t)

	require.NoError(t, db.Create(&[]models.Notification{
		{UserID: 1, Title: "a", Type: models.NotificationSystem},
		{UserID: 1, Title: "b", Type: models.NotificationSystem},
		{UserID: 2, Title: "c", Type: models.NotificationSystem},
	}).Error)

	req := jsonRequest("POST", "/api/notifications/mark-all-read", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))
	resp, _ := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var unreadMine, unreadTheirs int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", 1, false).Count(&unreadMine)
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", 2, false).Count(&unreadTheirs)
	assert.Zero(t, unreadMine)
	assert.Equal(t, int64(1), unreadTheirs)
}

func TestWeeklySummaryRequiresCredentials(t *testing.T) {
	app, _, _ := newNotificationsApp(t)

	resp, _ := doRequest(t, app, jsonRequest("POST", "/api/notifications/send-weekly-summary", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := jsonRequest("POST", "/api/notifications/send-weekly-summary", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	resp, _ = doRequest(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWeeklySummaryWithSchedulerKey(t *testing.T) {
	app, db, cfg := newNotificationsApp(t)

	active := models.User{Username: "active", Email: "a@example.com", PasswordHash: "x", NotificationsEnabled: true}
	optedOut := models.User{Username: "muted", Email: "m@example.com", PasswordHash: "x", NotificationsEnabled: false}
	stale := models.User{Username: "stale", Email: "s@example.com", PasswordHash: "x", NotificationsEnabled: true}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&optedOut).Error)
	require.NoError(t, db.Create(&stale).Error)

	now := time.Now()
	require.NoError(t, db.Create(&[]models.UserProgress{
		{UserID: active.ID, SubjectID: "math", MessagesCount: 12, LastAccessed: now.AddDate(0, 0, -1), CompletedTopics: "algebra,geometry"},
		{UserID: active.ID, SubjectID: "science", MessagesCount: 4, LastAccessed: now.AddDate(0, 0, -2)},
		{UserID: optedOut.ID, SubjectID: "math", MessagesCount: 8, LastAccessed: now.AddDate(0, 0, -1)},
		{UserID: stale.ID, SubjectID: "math", MessagesCount: 20, LastAccessed: now.AddDate(0, 0, -30)},
	}).Error)

	req := jsonRequest("POST", "/api/notifications/send-weekly-summary", nil)
	req.Header.Set("Authorization", "Bearer "+cfg.NotificationsAPIKey)

	resp, body := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(1), stats["success"])
	assert.Equal(t, float64(0), stats["errors"])

	// One summary, for the active user only, aggregating both subjects
	var summaries []models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationSummary).Find(&summaries).Error)
	require.Len(t, summaries, 1)
	assert.Equal(t, active.ID, summaries[0].UserID)
	assert.Contains(t, summaries[0].Message, "16 messages")
	assert.Contains(t, summaries[0].Message, "2 topics")
}

func TestWeeklySummaryWithUserToken(t *testing.T) {
	app, db, cfg := newNotificationsApp(t)

	user := models.User{Username: "active", Email: "a@example.com", PasswordHash: "x", NotificationsEnabled: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserProgress{
		UserID: user.ID, SubjectID: "math", MessagesCount: 2, LastAccessed: time.Now(),
	}).Error)

	req := jsonRequest("POST", "/api/notifications/send-weekly-summary", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, user.ID, cfg))

	resp, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
