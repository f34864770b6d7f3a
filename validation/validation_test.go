package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/models"
)

func validProject() *models.Project {
	return &models.Project{
		Title:        "Portfolio",
		Description:  "A description long enough",
		Category:     "web",
		Technologies: models.StringList{"Go"},
	}
}

func TestValidateProjectAccepts(t *testing.T) {
	result := ValidateProject(validProject())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateProjectTitleBoundary(t *testing.T) {
	p := validProject()

	p.Title = "abc"
	assert.True(t, ValidateProject(p).Valid)

	p.Title = "ab"
	result := ValidateProject(p)
	assert.False(t, result.Valid)
	assert.Equal(t, "Title must be at least 3 characters", result.Errors["title"])
}

func TestValidateProjectTrimsWhitespace(t *testing.T) {
	p := validProject()
	p.Title = "  ab  "

	result := ValidateProject(p)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "title")
}

func TestValidateProjectCategory(t *testing.T) {
	p := validProject()
	p.Category = "mobile"

	result := ValidateProject(p)
	assert.False(t, result.Valid)
	assert.Equal(t, "Please select a category", result.Errors["category"])
}

func TestValidateProjectURLs(t *testing.T) {
	p := validProject()

	p.ProjectURL = ""
	p.RepoURL = "https://github.com/example/repo"
	assert.True(t, ValidateProject(p).Valid)

	p.RepoURL = "not a url"
	result := ValidateProject(p)
	assert.False(t, result.Valid)
	assert.Equal(t, "Please enter a valid URL", result.Errors["repoUrl"])

	p.RepoURL = "ftp://example.com/file"
	assert.False(t, ValidateProject(p).Valid)
}

func TestValidateProjectNegativeOrder(t *testing.T) {
	p := validProject()
	p.Order = -1

	result := ValidateProject(p)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "order")
}

func TestValidateProfile(t *testing.T) {
	profile := &models.Profile{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	assert.True(t, ValidateProfile(profile).Valid)

	profile.Email = "not-an-email"
	result := ValidateProfile(profile)
	assert.False(t, result.Valid)
	assert.Equal(t, "Please enter a valid email address", result.Errors["email"])

	profile.Email = "ada@example.com"
	profile.FirstName = "A"
	result = ValidateProfile(profile)
	assert.False(t, result.Valid)
	assert.Equal(t, "First name must be at least 2 characters", result.Errors["firstName"])
}

func TestValidateCertificate(t *testing.T) {
	cert := &models.Certificate{Title: "Cloud Basics", Issuer: "AWS", Date: "2024"}
	assert.True(t, ValidateCertificate(cert).Valid)

	cert.Issuer = "A"
	result := ValidateCertificate(cert)
	assert.False(t, result.Valid)
	assert.Equal(t, "Issuer must be at least 2 characters", result.Errors["issuer"])
}

func TestValidateJourneyItem(t *testing.T) {
	item := &models.JourneyItem{Title: "First job", Description: "Started writing services", Date: "2020"}
	assert.True(t, ValidateJourneyItem(item).Valid)

	item.Date = "   "
	result := ValidateJourneyItem(item)
	assert.False(t, result.Valid)
	assert.Equal(t, "Date is required", result.Errors["date"])
}

func TestValidateSkillProficiencyRange(t *testing.T) {
	skill := &models.Skill{Name: "Go", Category: "programming", Proficiency: 100}
	assert.True(t, ValidateSkill(skill).Valid)

	skill.Proficiency = 101
	result := ValidateSkill(skill)
	assert.False(t, result.Valid)
	assert.Equal(t, "Proficiency must be between 0 and 100", result.Errors["proficiency"])

	skill.Proficiency = -1
	assert.False(t, ValidateSkill(skill).Valid)
}

func TestValidateMessageCollectsAllFieldErrors(t *testing.T) {
	message := &models.Message{Name: "A", Email: "bad", Subject: "hey", Message: "short"}

	result := ValidateMessage(message)
	assert.False(t, result.Valid)
	assert.Equal(t, 4, len(result.Errors))
	assert.Contains(t, result.Errors, "name")
	assert.Contains(t, result.Errors, "email")
	assert.Contains(t, result.Errors, "subject")
	assert.Contains(t, result.Errors, "message")
}

func TestValidateMessageAccepts(t *testing.T) {
	message := &models.Message{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello there",
		Message: "A message with enough substance",
	}
	assert.True(t, ValidateMessage(message).Valid)
}
