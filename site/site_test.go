package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

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

func setupTestRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("views/*.html")

	siteModule := NewSiteModule(s, cache.New(time.Minute, time.Minute), nil)
	siteModule.RegisterRoutes(router)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedProfile(db *gorm.DB) {
	db.Create(&models.Profile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Bio:       "I write **engines**.",
	})
}

// failingStore simulates a dead backend: every read and write errors.
type failingStore struct{}

var errDown = errors.New("backend down")

func (failingStore) GetProfile() (*models.Profile, error)        { return nil, errDown }
func (failingStore) SaveProfile(*models.Profile) error           { return errDown }
func (failingStore) ListSkills() ([]models.Skill, error)         { return nil, errDown }
func (failingStore) CreateSkill(*models.Skill) (uint, error)     { return 0, errDown }
func (failingStore) UpdateSkill(uint, map[string]interface{}) error { return errDown }
func (failingStore) DeleteSkill(uint) error                      { return errDown }
func (failingStore) ListProjects() ([]models.Project, error)     { return nil, errDown }
func (failingStore) CreateProject(*models.Project) (uint, error) { return 0, errDown }
func (failingStore) UpdateProject(uint, map[string]interface{}) error { return errDown }
func (failingStore) DeleteProject(uint) error                    { return errDown }
func (failingStore) ListCertificates() ([]models.Certificate, error) { return nil, errDown }
func (failingStore) CreateCertificate(*models.Certificate) (uint, error) { return 0, errDown }
func (failingStore) UpdateCertificate(uint, map[string]interface{}) error { return errDown }
func (failingStore) DeleteCertificate(uint) error                { return errDown }
func (failingStore) ListJourneyItems() ([]models.JourneyItem, error) { return nil, errDown }
func (failingStore) CreateJourneyItem(*models.JourneyItem) (uint, error) { return 0, errDown }
func (failingStore) UpdateJourneyItem(uint, map[string]interface{}) error { return errDown }
func (failingStore) DeleteJourneyItem(uint) error                { return errDown }
func (failingStore) ListMessages() ([]models.Message, error)     { return nil, errDown }
func (failingStore) CreateMessage(*models.Message) (uint, error) { return 0, errDown }
func (failingStore) SetMessageRead(uint, bool) error             { return errDown }
func (failingStore) DeleteMessage(uint) error                    { return errDown }

func TestIndexRendersStoredContent(t *testing.T) {
	db := setupTestDB()
	seedProfile(db)
	db.Create(&models.Project{Title: "Engine", Description: "A description long enough", Category: "web", Technologies: models.StringList{"Go"}})

	router := setupTestRouter(store.NewSQLStore(db))
	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada Lovelace")
	assert.Contains(t, w.Body.String(), "Engine")
	assert.NotContains(t, w.Body.String(), "showing defaults")
}

func TestIndexRendersBioMarkdown(t *testing.T) {
	db := setupTestDB()
	seedProfile(db)

	router := setupTestRouter(store.NewSQLStore(db))
	w := get(router, "/")

	assert.Contains(t, w.Body.String(), "<strong>engines</strong>")
}

func TestMissingProfileDoesNotDegradeStoredContent(t *testing.T) {
	db := setupTestDB()
	// no profile saved yet, but real content exists
	db.Create(&models.Project{Title: "Engine", Description: "A description long enough", Category: "web", Technologies: models.StringList{"Go"}})

	router := setupTestRouter(store.NewSQLStore(db))
	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// the default profile fills the hero, the stored project still renders,
	// and there is no fallback notice
	assert.Contains(t, body, "Christopher Joshy")
	assert.Contains(t, body, "Engine")
	assert.NotContains(t, body, "showing defaults")
	// the default project list is not substituted for the stored one
	assert.NotContains(t, body, "KKNotes")
}

func TestIndexFallsBackToDefaultsOnce(t *testing.T) {
	router := setupTestRouter(failingStore{})
	w := get(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Christopher Joshy")
	// one notice for the whole page, not one per failed section
	assert.Equal(t, 1, strings.Count(body, "showing defaults"))
}

func TestCategoryFilter(t *testing.T) {
	db := setupTestDB()
	seedProfile(db)
	db.Create(&models.Project{Title: "Web Thing", Description: "A description long enough", Category: "web", Technologies: models.StringList{"Go"}})
	db.Create(&models.Project{Title: "Game Thing", Description: "A description long enough", Category: "game", Technologies: models.StringList{"Go"}})

	router := setupTestRouter(store.NewSQLStore(db))

	w := get(router, "/?category=web")
	assert.Contains(t, w.Body.String(), "Web Thing")
	assert.NotContains(t, w.Body.String(), "Game Thing")

	// unknown categories mean no filter
	w = get(router, "/?category=nonsense")
	assert.Contains(t, w.Body.String(), "Web Thing")
	assert.Contains(t, w.Body.String(), "Game Thing")
}

func TestContactStoresMessageAndRedirects(t *testing.T) {
	db := setupTestDB()
	seedProfile(db)
	router := setupTestRouter(store.NewSQLStore(db))

	form := url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"subject": {"Hello there"},
		"message": {"A message with enough substance"},
	}
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/?sent=1", w.Header().Get("Location"))

	var message models.Message
	assert.NoError(t, db.First(&message).Error)
	assert.Equal(t, "Visitor", message.Name)
	assert.False(t, message.Read)
}

func TestContactValidationPreservesInput(t *testing.T) {
	db := setupTestDB()
	seedProfile(db)
	router := setupTestRouter(store.NewSQLStore(db))

	form := url.Values{
		"name":    {"Visitor"},
		"email":   {"bad-email"},
		"subject": {"Hello there"},
		"message": {"A message with enough substance"},
	}
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid email address")
	assert.Contains(t, w.Body.String(), `value="bad-email"`)

	var count int64
	db.Model(&models.Message{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRenderMarkdownFallsBackToEscapedText(t *testing.T) {
	out := renderMarkdown("plain <script>alert(1)</script>")
	assert.NotContains(t, string(out), "<script>")
}
