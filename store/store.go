// Package store is the content repository behind both the public site and
// the admin editors. Lists come back in each entity's natural order and
// every failure is wrapped in a StoreError the caller surfaces to the user.
package store

import (
	"github.com/pkg/errors"

	"portfolio/models"
)

// ErrNotFound is returned when an update or delete targets a missing record.
var ErrNotFound = errors.New("record not found")

// StoreError wraps a backend failure. There is no retry or offline queue;
// the caller waits for the round trip and reports the failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Store is the content repository contract: one list/create/update/delete
// set per entity, opaque ids assigned on create, ordered lists. Profile is a
// singleton and only ever saved in place; Message is created by visitors and
// mutated only through its read flag.
type Store interface {
	GetProfile() (*models.Profile, error)
	SaveProfile(p *models.Profile) error

	ListSkills() ([]models.Skill, error)
	CreateSkill(s *models.Skill) (uint, error)
	UpdateSkill(id uint, patch map[string]interface{}) error
	DeleteSkill(id uint) error

	ListProjects() ([]models.Project, error)
	CreateProject(p *models.Project) (uint, error)
	UpdateProject(id uint, patch map[string]interface{}) error
	DeleteProject(id uint) error

	ListCertificates() ([]models.Certificate, error)
	CreateCertificate(c *models.Certificate) (uint, error)
	UpdateCertificate(id uint, patch map[string]interface{}) error
	DeleteCertificate(id uint) error

	ListJourneyItems() ([]models.JourneyItem, error)
	CreateJourneyItem(j *models.JourneyItem) (uint, error)
	UpdateJourneyItem(id uint, patch map[string]interface{}) error
	DeleteJourneyItem(id uint) error

	ListMessages() ([]models.Message, error)
	CreateMessage(m *models.Message) (uint, error)
	SetMessageRead(id uint, read bool) error
	DeleteMessage(id uint) error
}

// Patch builders keep column naming in one place so editors and the API
// hand the store ready-made update maps.

func ProfilePatch(p *models.Profile) map[string]interface{} {
	return map[string]interface{}{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"email":      p.Email,
		"phone":      p.Phone,
		"bio":        p.Bio,
		"location":   p.Location,
		"avatar":     p.Avatar,
		"resume":     p.Resume,
		"github":     p.Github,
		"linkedin":   p.Linkedin,
		"instagram":  p.Instagram,
		"website":    p.Website,
		"titles":     p.Titles,
		"stats":      p.Stats,
	}
}

func SkillPatch(s *models.Skill) map[string]interface{} {
	return map[string]interface{}{
		"name":        s.Name,
		"category":    s.Category,
		"proficiency": s.Proficiency,
		"icon_name":   s.IconName,
		"color":       s.Color,
	}
}

func ProjectPatch(p *models.Project) map[string]interface{} {
	return map[string]interface{}{
		"title":         p.Title,
		"description":   p.Description,
		"thumbnail_url": p.ThumbnailURL,
		"project_url":   p.ProjectURL,
		"repo_url":      p.RepoURL,
		"category":      p.Category,
		"technologies":  p.Technologies,
		"featured":      p.Featured,
		"stars":         p.Stars,
		"sort_order":    p.Order,
	}
}

func CertificatePatch(c *models.Certificate) map[string]interface{} {
	return map[string]interface{}{
		"title":           c.Title,
		"issuer":          c.Issuer,
		"date":            c.Date,
		"description":     c.Description,
		"image_url":       c.ImageURL,
		"certificate_url": c.CertificateURL,
		"category":        c.Category,
		"sort_order":      c.Order,
	}
}

func JourneyItemPatch(j *models.JourneyItem) map[string]interface{} {
	return map[string]interface{}{
		"title":       j.Title,
		"description": j.Description,
		"date":        j.Date,
		"sort_order":  j.Order,
	}
}
