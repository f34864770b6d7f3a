package site

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/sync/errgroup"

	"portfolio/analytics"
	"portfolio/cache"
	"portfolio/defaults"
	logger "portfolio/loggers"
	"portfolio/models"
	"portfolio/store"
	"portfolio/validation"
)

// markdown renderer for the profile bio
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
)

var projectCategories = map[string]bool{"web": true, "game": true, "ai": true, "other": true}

// SiteModule renders the public page. Content is fetched once per request
// (through the read cache); if any read fails the compiled-in defaults are
// shown with a single notice.
type SiteModule struct {
	store     store.Store
	cache     *cache.Cache
	analytics *analytics.AnalyticsModule
}

func NewSiteModule(s store.Store, c *cache.Cache, a *analytics.AnalyticsModule) *SiteModule {
	return &SiteModule{store: s, cache: c, analytics: a}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.index)
	router.POST("/contact", s.contact)
}

type content struct {
	Profile      models.Profile
	Projects     []models.Project
	Certificates []models.Certificate
	Journey      []models.JourneyItem
	Skills       []models.Skill
	Degraded     bool
}

// load fetches every section in parallel. The reads are independent; a
// failure in any of them flips the whole page to the default dataset so the
// visitor sees one consistent fallback, not a patchwork.
func (s *SiteModule) load() content {
	var data content

	var g errgroup.Group
	g.Go(func() error {
		v, err := s.cache.Fetch(cache.KeyProfile, func() (interface{}, error) {
			p, err := s.store.GetProfile()
			// no saved profile on a healthy store just means nothing has
			// been entered yet; show the default profile without degrading
			// the rest of the page
			if errors.Is(err, store.ErrNotFound) {
				return defaults.Profile(), nil
			}
			if err != nil {
				return nil, err
			}
			return *p, nil
		})
		if err != nil {
			return err
		}
		data.Profile = v.(models.Profile)
		return nil
	})
	g.Go(func() error {
		v, err := s.cache.Fetch(cache.KeyProjects, func() (interface{}, error) {
			return s.store.ListProjects()
		})
		if err != nil {
			return err
		}
		data.Projects = v.([]models.Project)
		return nil
	})
	g.Go(func() error {
		v, err := s.cache.Fetch(cache.KeyCertificates, func() (interface{}, error) {
			return s.store.ListCertificates()
		})
		if err != nil {
			return err
		}
		data.Certificates = v.([]models.Certificate)
		return nil
	})
	g.Go(func() error {
		v, err := s.cache.Fetch(cache.KeyJourney, func() (interface{}, error) {
			return s.store.ListJourneyItems()
		})
		if err != nil {
			return err
		}
		data.Journey = v.([]models.JourneyItem)
		return nil
	})
	g.Go(func() error {
		v, err := s.cache.Fetch(cache.KeySkills, func() (interface{}, error) {
			return s.store.ListSkills()
		})
		if err != nil {
			return err
		}
		data.Skills = v.([]models.Skill)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Logger.Errorf("public content load failed, serving defaults: %v", err)
		return content{
			Profile:      defaults.Profile(),
			Projects:     defaults.Projects(),
			Certificates: defaults.Certificates(),
			Journey:      defaults.JourneyItems(),
			Skills:       defaults.Skills(),
			Degraded:     true,
		}
	}

	return data
}

func (s *SiteModule) index(c *gin.Context) {
	s.analytics.TrackVisit(c)

	data := s.load()

	// exact-match filter applied after fetch; "all" and unknown values mean
	// no filter
	category := c.Query("category")
	projects := data.Projects
	if projectCategories[category] {
		filtered := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	if live := s.analytics.VisitorCount(); live > int64(data.Profile.Stats.Visitors) {
		data.Profile.Stats.Visitors = int(live)
	}

	c.HTML(http.StatusOK, "site_home.html", gin.H{
		"profile":      data.Profile,
		"bioHTML":      renderMarkdown(data.Profile.Bio),
		"projects":     projects,
		"certificates": data.Certificates,
		"journey":      data.Journey,
		"skills":       data.Skills,
		"category":     category,
		"degraded":     data.Degraded,
		"sent":         c.Query("sent") == "1",
	})
}

func (s *SiteModule) contact(c *gin.Context) {
	message := &models.Message{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}

	result := validation.ValidateMessage(message)
	if !result.Valid {
		data := s.load()
		c.HTML(http.StatusBadRequest, "site_home.html", gin.H{
			"profile":       data.Profile,
			"bioHTML":       renderMarkdown(data.Profile.Bio),
			"projects":      data.Projects,
			"certificates":  data.Certificates,
			"journey":       data.Journey,
			"skills":        data.Skills,
			"degraded":      data.Degraded,
			"contactErrors": result.Errors,
			"contactForm":   message,
		})
		return
	}

	if _, err := s.store.CreateMessage(message); err != nil {
		logger.Logger.Errorf("storing contact message: %v", err)
		data := s.load()
		c.HTML(http.StatusInternalServerError, "site_home.html", gin.H{
			"profile":      data.Profile,
			"bioHTML":      renderMarkdown(data.Profile.Bio),
			"projects":     data.Projects,
			"certificates": data.Certificates,
			"journey":      data.Journey,
			"skills":       data.Skills,
			"degraded":     data.Degraded,
			"contactError": "Could not send your message, please try again",
			"contactForm":  message,
		})
		return
	}

	c.Redirect(http.StatusFound, "/?sent=1")
}

func renderMarkdown(content string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// fall back to the raw text rather than breaking the page
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(buf.String())
}
