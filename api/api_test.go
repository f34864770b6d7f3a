package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/auth"
	"portfolio/cache"
	"portfolio/models"
	"portfolio/store"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Certificate{},
		&models.JourneyItem{},
		&models.Message{},
	)
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	apiModule := NewAPIModule(
		store.NewSQLStore(db),
		cache.New(time.Minute, time.Minute),
		auth.NewSharedSecret(),
	)
	apiModule.RegisterRoutes(router, []string{"*"})
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProjectReturnsRecordWithID(t *testing.T) {
	router := setupTestRouter(setupTestDB())

	w := doJSON(router, "POST", "/api/projects", map[string]interface{}{
		"title":        "API Project",
		"description":  "A description long enough",
		"category":     "web",
		"technologies": []string{"Go"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Project
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "API Project", created.Title)
}

func TestCreateProjectValidationReturnsFieldMap(t *testing.T) {
	router := setupTestRouter(setupTestDB())

	w := doJSON(router, "POST", "/api/projects", map[string]interface{}{
		"title":       "ab",
		"description": "short",
		"category":    "bogus",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid project data", body.Message)
	assert.Equal(t, "Title must be at least 3 characters", body.Errors["title"])
	assert.Contains(t, body.Errors, "description")
	assert.Contains(t, body.Errors, "category")
	assert.Contains(t, body.Errors, "technologies")
}

func TestDeleteReturns204(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	db.Create(&models.Skill{Name: "Go", Category: "programming", Proficiency: 90})

	w := doJSON(router, "DELETE", "/api/skills/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	var count int64
	db.Model(&models.Skill{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteMissingRecordReturns500(t *testing.T) {
	router := setupTestRouter(setupTestDB())

	w := doJSON(router, "DELETE", "/api/projects/42", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestUpdateSkill(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	db.Create(&models.Skill{Name: "Go", Category: "programming", Proficiency: 80})

	w := doJSON(router, "PUT", "/api/skills/1", map[string]interface{}{
		"name":        "Golang",
		"category":    "programming",
		"proficiency": 95,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var skill models.Skill
	db.First(&skill, 1)
	assert.Equal(t, "Golang", skill.Name)
	assert.Equal(t, 95, skill.Proficiency)
}

func TestGetProfileWithoutRecordReturns500(t *testing.T) {
	router := setupTestRouter(setupTestDB())

	w := doJSON(router, "GET", "/api/profile", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error fetching profile")
}

func TestUpdateProfileCreatesSingleton(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := doJSON(router, "PUT", "/api/profile", map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var profile models.Profile
	json.Unmarshal(w.Body.Bytes(), &profile)
	assert.Equal(t, "Ada", profile.FirstName)
}

func TestMarkMessageRead(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	db.Create(&models.Message{Name: "Visitor", Email: "v@example.com", Subject: "Hello there", Message: "A message long enough"})

	w := doJSON(router, "PUT", "/api/messages/1/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var message models.Message
	db.First(&message, 1)
	assert.True(t, message.Read)
}

func TestCreateMessageIgnoresSubmittedReadFlag(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := doJSON(router, "POST", "/api/messages", map[string]interface{}{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello there",
		"message": "A message with enough substance",
		"read":    true,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var message models.Message
	db.First(&message, 1)
	assert.False(t, message.Read)
}

func TestLogin(t *testing.T) {
	router := setupTestRouter(setupTestDB())

	w := doJSON(router, "POST", "/api/login", map[string]string{
		"email":    "chris@2005",
		"password": "chris@2005",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isAdmin":true`)
	// no token or cookie is issued
	assert.Empty(t, w.Header().Get("Set-Cookie"))

	w = doJSON(router, "POST", "/api/login", map[string]string{
		"email":    "chris@2005",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestCORSPreflight(t *testing.T) {
	router := setupTestRouter(setupTestDB())

	req, _ := http.NewRequest("OPTIONS", "/api/projects", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
