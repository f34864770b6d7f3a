package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"portfolio/models"
)

// Result is the outcome of validating one submitted record. Errors is keyed
// by field name and is only populated when Valid is false.
type Result struct {
	Valid  bool
	Errors map[string]string
}

func newResult() Result {
	return Result{Valid: true, Errors: map[string]string{}}
}

func (r *Result) fail(field, message string) {
	r.Valid = false
	r.Errors[field] = message
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var projectCategories = map[string]bool{"web": true, "game": true, "ai": true, "other": true}
var skillCategories = map[string]bool{"programming": true, "framework": true, "tool": true, "other": true}

func minLen(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}

// urlOrEmpty accepts an empty string or an absolute http(s) URL.
func urlOrEmpty(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func ValidateProfile(p *models.Profile) Result {
	r := newResult()
	if !minLen(p.FirstName, 2) {
		r.fail("firstName", "First name must be at least 2 characters")
	}
	if !minLen(p.LastName, 2) {
		r.fail("lastName", "Last name must be at least 2 characters")
	}
	if !emailRe.MatchString(p.Email) {
		r.fail("email", "Please enter a valid email address")
	}
	if !urlOrEmpty(p.Github) {
		r.fail("github", "Please enter a valid URL")
	}
	if !urlOrEmpty(p.Linkedin) {
		r.fail("linkedin", "Please enter a valid URL")
	}
	if !urlOrEmpty(p.Instagram) {
		r.fail("instagram", "Please enter a valid URL")
	}
	if !urlOrEmpty(p.Website) {
		r.fail("website", "Please enter a valid URL")
	}
	return r
}

func ValidateProject(p *models.Project) Result {
	r := newResult()
	if !minLen(p.Title, 3) {
		r.fail("title", "Title must be at least 3 characters")
	}
	if !minLen(p.Description, 10) {
		r.fail("description", "Description must be at least 10 characters")
	}
	if !projectCategories[p.Category] {
		r.fail("category", "Please select a category")
	}
	if !urlOrEmpty(p.ProjectURL) {
		r.fail("projectUrl", "Please enter a valid URL")
	}
	if !urlOrEmpty(p.RepoURL) {
		r.fail("repoUrl", "Please enter a valid URL")
	}
	if len(p.Technologies) == 0 {
		r.fail("technologies", "Add at least one technology")
	}
	if p.Stars < 0 {
		r.fail("stars", "Stars must not be negative")
	}
	if p.Order < 0 {
		r.fail("order", "Order must not be negative")
	}
	return r
}

func ValidateCertificate(c *models.Certificate) Result {
	r := newResult()
	if !minLen(c.Title, 3) {
		r.fail("title", "Title must be at least 3 characters")
	}
	if !minLen(c.Issuer, 2) {
		r.fail("issuer", "Issuer must be at least 2 characters")
	}
	if !minLen(c.Date, 3) {
		r.fail("date", "Date is required")
	}
	if !urlOrEmpty(c.ImageURL) {
		r.fail("imageUrl", "Please enter a valid URL")
	}
	if !urlOrEmpty(c.CertificateURL) {
		r.fail("certificateUrl", "Please enter a valid URL")
	}
	if c.Order < 0 {
		r.fail("order", "Order must not be negative")
	}
	return r
}

func ValidateJourneyItem(j *models.JourneyItem) Result {
	r := newResult()
	if !minLen(j.Title, 3) {
		r.fail("title", "Title must be at least 3 characters")
	}
	if !minLen(j.Description, 10) {
		r.fail("description", "Description must be at least 10 characters")
	}
	if strings.TrimSpace(j.Date) == "" {
		r.fail("date", "Date is required")
	}
	if j.Order < 0 {
		r.fail("order", "Order must not be negative")
	}
	return r
}

func ValidateSkill(s *models.Skill) Result {
	r := newResult()
	if !minLen(s.Name, 2) {
		r.fail("name", "Name must be at least 2 characters")
	}
	if !skillCategories[s.Category] {
		r.fail("category", "Please select a category")
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		r.fail("proficiency", "Proficiency must be between 0 and 100")
	}
	return r
}

func ValidateMessage(m *models.Message) Result {
	r := newResult()
	if !minLen(m.Name, 2) {
		r.fail("name", "Name must be at least 2 characters")
	}
	if !emailRe.MatchString(m.Email) {
		r.fail("email", "Please enter a valid email address")
	}
	if !minLen(m.Subject, 5) {
		r.fail("subject", "Subject must be at least 5 characters")
	}
	if !minLen(m.Message, 10) {
		r.fail("message", "Message must be at least 10 characters")
	}
	return r
}
