package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is stored as a JSON array in a TEXT column. Absent values
// round-trip as an empty list, never as NULL, so editors can default cheaply.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// ProfileStats holds the optional display counters shown on the public page.
type ProfileStats struct {
	Visitors          int `json:"visitors"`
	GithubStars       int `json:"githubStars"`
	GithubCommits     int `json:"githubCommits"`
	GithubRepos       int `json:"githubRepos"`
	ProjectsCompleted int `json:"projectsCompleted"`
}

func (s ProfileStats) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *ProfileStats) Scan(value interface{}) error {
	if value == nil {
		*s = ProfileStats{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type %T for ProfileStats", value)
	}
}

// Profile is a singleton by convention: the editors only ever update the
// existing row, they never create a second one.
type Profile struct {
	ID        uint         `gorm:"primary_key" json:"id"`
	FirstName string       `gorm:"not null" json:"firstName"`
	LastName  string       `gorm:"not null" json:"lastName"`
	Email     string       `gorm:"not null" json:"email"`
	Phone     string       `json:"phone"`
	Bio       string       `gorm:"type:text" json:"bio"`
	Location  string       `json:"location"`
	Avatar    string       `json:"avatar"`
	Resume    string       `json:"resume"`
	Github    string       `json:"github"`
	Linkedin  string       `json:"linkedin"`
	Instagram string       `json:"instagram"`
	Website   string       `json:"website"`
	Titles    StringList   `gorm:"type:text" json:"titles"`
	Stats     ProfileStats `gorm:"type:text" json:"stats"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type Skill struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null;index" json:"category"` // programming, framework, tool, other
	Proficiency int       `gorm:"not null" json:"proficiency"`    // 0-100
	IconName    string    `json:"iconName"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Project struct {
	ID           uint       `gorm:"primary_key" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	ProjectURL   string     `json:"projectUrl"`
	RepoURL      string     `json:"repoUrl"`
	Category     string     `gorm:"not null;index" json:"category"` // web, game, ai, other
	Technologies StringList `gorm:"type:text" json:"technologies"`
	Featured     bool       `gorm:"default:false" json:"featured"`
	Stars        int        `gorm:"default:0" json:"stars"`
	Order        int        `gorm:"column:sort_order;default:0;index" json:"order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Certificate struct {
	ID             uint      `gorm:"primary_key" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Issuer         string    `gorm:"not null" json:"issuer"`
	Date           string    `gorm:"not null" json:"date"` // free text, not parsed
	Description    string    `gorm:"type:text" json:"description"`
	ImageURL       string    `json:"imageUrl"`
	CertificateURL string    `json:"certificateUrl"`
	Category       string    `json:"category"`
	Order          int       `gorm:"column:sort_order;default:0;index" json:"order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type JourneyItem struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        string    `gorm:"not null" json:"date"` // free-text label; ordering uses Order
	Order       int       `gorm:"column:sort_order;default:0;index" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Message is write-once from the public contact form; the admin can only
// toggle the read flag or delete it.
type Message struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
