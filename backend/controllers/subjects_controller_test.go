package controllers

import (
	"net/http"
	"testing"
	"time"

	"aitutor/backend/config"
	"aitutor/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubjectsApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()

	app := fiber.New()
	controller := NewSubjectsController(db, cfg)
	app.Get("/api/subjects", controller.GetSubjects)
	app.Get("/api/subjects/:id", controller.GetSubjectDetails)
	return app, db, cfg
}

func subjectIDs(t *testing.T, body []interface{}) []string {
	t.Helper()
	ids := make([]string, 0, len(body))
	for _, entry := range body {
		ids = append(ids, entry.(map[string]interface{})["id"].(string))
	}
	return ids
}

func TestGetSubjectsAll(t *testing.T) {
	app, _, cfg := newSubjectsApp(t)

	req := jsonRequest("GET", "/api/subjects", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []interface{}
	decodeBody(t, resp, &body)
	assert.ElementsMatch(t,
		[]string{"math", "science", "english", "history", "programming"},
		subjectIDs(t, body))
}

func TestGetSubjectsSearch(t *testing.T) {
	app, _, cfg := newSubjectsApp(t)

	req := jsonRequest("GET", "/api/subjects?search=numbers", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var body []interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, []string{"math"}, subjectIDs(t, body))
}

func TestGetSubjectsDifficultyFilter(t *testing.T) {
	app, _, cfg := newSubjectsApp(t)

	req := jsonRequest("GET", "/api/subjects?difficulty=beginner", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var body []interface{}
	decodeBody(t, resp, &body)
	// Science only has intermediate topics
	assert.NotContains(t, subjectIDs(t, body), "science")
	assert.Contains(t, subjectIDs(t, body), "math")
}

func TestGetSubjectDetailsAvailability(t *testing.T) {
	app, db, cfg := newSubjectsApp(t)

	require.NoError(t, db.Create(&models.UserProgress{
		UserID:          1,
		SubjectID:       "math",
		LastAccessed:    time.Now(),
		CompletedTopics: "math-basics-operations",
	}).Error)

	req := jsonRequest("GET", "/api/subjects/math", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, body := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	subject := body["subject"].(map[string]interface{})
	topics := subject["topics"].([]interface{})
	require.Len(t, topics, 2)

	basics := topics[0].(map[string]interface{})
	assert.Equal(t, "math-basics", basics["id"])
	assert.Equal(t, true, basics["available"])
	subtopics := basics["subtopics"].([]interface{})
	assert.Equal(t, true, subtopics[0].(map[string]interface{})["completed"])
	assert.Equal(t, false, subtopics[1].(map[string]interface{})["completed"])

	// Prerequisite satisfied by the completed basics subtopic
	algebra := topics[1].(map[string]interface{})
	assert.Equal(t, "math-algebra", algebra["id"])
	assert.Equal(t, true, algebra["available"])
}

func TestGetSubjectDetailsLockedPrerequisite(t *testing.T) {
	app, _, cfg := newSubjectsApp(t)

	req := jsonRequest("GET", "/api/subjects/math", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	_, body := doRequest(t, app, req)
	topics := body["subject"].(map[string]interface{})["topics"].([]interface{})
	algebra := topics[1].(map[string]interface{})
	assert.Equal(t, false, algebra["available"])
}

func TestGetSubjectDetailsNotFound(t *testing.T) {
	app, _, cfg := newSubjectsApp(t)

	req := jsonRequest("GET", "/api/subjects/alchemy", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1, cfg))

	resp, _ := doRequest(t, app, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
