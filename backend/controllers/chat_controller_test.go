package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"aitutor/backend/config"
	"aitutor/backend/models"
	"aitutor/backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeChatClient struct {
	reply string
	err   error
}

func (f *fakeChatClient) Generate(ctx context.Context, messages []services.Message, subject string) (string, error) {
	return f.reply, f.err
}

func newChatApp(t *testing.T, chat services.ChatClient) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	testLogger := newTestLogger()
	updater := services.NewProgressUpdater(db, services.NewNotificationService(db, testLogger), testLogger)

	app := fiber.New()
	chatController := NewChatController(db, cfg, chat, updater, testLogger)
	app.Post("/api/chat", chatController.SendMessage)
	app.Get("/api/chat/history", chatController.GetHistory)
	return app, db, cfg
}

func TestSendMessageSuccess(t *testing.T) {
	app, db, cfg := newChatApp(t, &fakeChatClient{reply: "A fraction represents a part of a whole."})

	req := jsonRequest("POST", "/api/chat", map[string]interface{}{
		"subject": "math",
		"messages": []map[string]string{
			{"role": "user", "content": "What is a fraction?"},
		},
	})
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, body := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "A fraction represents a part of a whole.", body["message"])

	// Both turns persisted, counter bumped by two
	var messages []models.ChatMessage
	require.NoError(t, db.Order("id ASC").Find(&messages).Error)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "assistant", messages[1].Role)

	var progress models.UserProgress
	require.NoError(t, db.Where("user_id = ? AND subject_id = ?", 1, "math").First(&progress).Error)
	assert.Equal(t, 2, progress.MessagesCount)
}

func TestSendMessageAccumulatesCounter(t *testing.T) {
	app, db, cfg := newChatApp(t, &fakeChatClient{reply: "ok"})
	token := tokenFor(t, 1, cfg)

	for i := 0; i < 3; i++ {
		req := jsonRequest("POST", "/api/chat", map[string]interface{}{
			"subject": "math",
			"messages": []map[string]string{
				{"role": "user", "content": "hello"},
			},
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var progress models.UserProgress
	require.NoError(t, db.Where("user_id = ? AND subject_id = ?", 1, "math").First(&progress).Error)
	assert.Equal(t, 6, progress.MessagesCount)
}

func TestSendMessageUnauthorized(t *testing.T) {
	app, _, _ := newChatApp(t, &fakeChatClient{reply: "ok"})

	resp, _ := doRequest(t, app, jsonRequest("POST", "/api/chat", map[string]interface{}{
		"subject":  "math",
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSendMessageValidation(t *testing.T) {
	app, _, cfg := newChatApp(t, &fakeChatClient{reply: "ok"})
	token := tokenFor(t, 1, cfg)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"empty messages", map[string]interface{}{"subject": "math", "messages": []map[string]string{}}},
		{"missing subject", map[string]interface{}{"messages": []map[string]string{{"role": "user", "content": "hi"}}}},
		{"bad role", map[string]interface{}{"subject": "math", "messages": []map[string]string{{"role": "hacker", "content": "hi"}}}},
		{"last turn not user", map[string]interface{}{"subject": "math", "messages": []map[string]string{
			{"role": "user", "content": "hi"},
			{"role": "assistant", "content": "hello"},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := jsonRequest("POST", "/api/chat", tc.body)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, _ := doRequest(t, app, req)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSendMessageTimeout(t *testing.T) {
	app, _, cfg := newChatApp(t, &fakeChatClient{err: services.ErrChatTimeout})

	req := jsonRequest("POST", "/api/chat", map[string]interface{}{
		"subject":  "math",
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
}

func TestSendMessageUpstreamFailure(t *testing.T) {
	app, _, cfg := newChatApp(t, &fakeChatClient{err: errors.New("provider exploded")})

	req := jsonRequest("POST", "/api/chat", map[string]interface{}{
		"subject":  "math",
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetHistoryOrderedBySubject(t *testing.T) {
	app, db, cfg := newChatApp(t, &fakeChatClient{reply: "ok"})

	require.NoError(t, db.Create(&[]models.ChatMessage{
		{UserID: 1, SubjectID: "math", Role: "user", Content: "first"},
		{UserID: 1, SubjectID: "math", Role: "assistant", Content: "second"},
		{UserID: 1, SubjectID: "science", Role: "user", Content: "other subject"},
		{UserID: 2, SubjectID: "math", Role: "user", Content: "other user"},
	}).Error)

	req := jsonRequest("GET", "/api/chat/history?subject=math", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, body := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	messages, ok := body["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "first", first["content"])
}
