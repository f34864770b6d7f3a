package analytics

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	logger "portfolio/loggers"
)

// VisitEvent is one deduplicated visit to the public page.
type VisitEvent struct {
	ID        uint      `gorm:"primary_key;autoIncrement"`
	CookieID  string    `gorm:"not null;index"`
	IP        string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

// AnalyticsModule counts public-page visitors for the profile stats display.
type AnalyticsModule struct {
	db *gorm.DB
}

func NewAnalyticsModule(db *gorm.DB) *AnalyticsModule {
	if db == nil {
		logger.Logger.Info("Analytics DB is nil, visit counting disabled")
		return nil
	}

	if err := db.AutoMigrate(&VisitEvent{}); err != nil {
		logger.Logger.Errorf("Error migrating visit_events table: %v", err)
		return nil
	}

	return &AnalyticsModule{db: db}
}

// TrackVisit records a visit unless the same cookie was already seen within
// the last 30 minutes, so refreshes do not inflate the counter.
func (a *AnalyticsModule) TrackVisit(c *gin.Context) {
	if a == nil || a.db == nil {
		return
	}

	cookieID := a.getOrCreateCookieID(c)
	thirtyMinutesAgo := time.Now().Add(-30 * time.Minute)

	var recent VisitEvent
	err := a.db.Where("cookie_id = ? AND created_at > ?", cookieID, thirtyMinutesAgo).
		First(&recent).Error
	if err == nil {
		return
	}

	event := VisitEvent{
		CookieID:  cookieID,
		IP:        c.ClientIP(),
		CreatedAt: time.Now(),
	}
	if err := a.db.Create(&event).Error; err != nil {
		logger.Logger.Errorf("Error recording visit: %v", err)
	}
}

// VisitorCount returns the number of distinct visitors seen so far.
func (a *AnalyticsModule) VisitorCount() int64 {
	if a == nil || a.db == nil {
		return 0
	}

	var count int64
	if err := a.db.Model(&VisitEvent{}).Distinct("cookie_id").Count(&count).Error; err != nil {
		logger.Logger.Errorf("Error counting visitors: %v", err)
		return 0
	}
	return count
}

func (a *AnalyticsModule) getOrCreateCookieID(c *gin.Context) string {
	if id, err := c.Cookie("visitor_id"); err == nil && id != "" {
		return id
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	id := hex.EncodeToString(b)

	c.SetCookie("visitor_id", id, 86400*365, "/", "", false, true)
	return id
}
