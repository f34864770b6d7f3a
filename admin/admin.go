package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"portfolio/auth"
	"portfolio/cache"
	logger "portfolio/loggers"
	"portfolio/models"
	"portfolio/store"
	"portfolio/uploads"
	"portfolio/validation"
)

const sessionKey = "admin_logged_in"

// AdminModule hosts the login gate, the dashboard, and the entity editors.
// Everything it needs is passed in at construction; there is no global state.
type AdminModule struct {
	store store.Store
	files *uploads.FileStore
	authn auth.Authenticator
	cache *cache.Cache
}

func NewAdminModule(s store.Store, files *uploads.FileStore, authn auth.Authenticator, c *cache.Cache) *AdminModule {
	return &AdminModule{
		store: s,
		files: files,
		authn: authn,
		cache: c,
	}
}

func (a *AdminModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", a.loginPage)
	router.POST("/login", a.loginPost)
	router.GET("/admin/logout", a.logout)

	adminGroup := router.Group("/admin")
	adminGroup.Use(a.requireAuth)
	{
		adminGroup.GET("", a.dashboard)
		adminGroup.GET("/refresh", a.refresh)

		adminGroup.GET("/profile", a.editProfile)
		adminGroup.POST("/profile", a.updateProfile)

		adminGroup.GET("/projects/new", a.newProject)
		adminGroup.POST("/projects/new", a.createProject)
		adminGroup.GET("/projects/:id", a.editProject)
		adminGroup.POST("/projects/:id", a.updateProject)
		adminGroup.POST("/projects/:id/delete", a.confirmDelete("project"))
		adminGroup.POST("/projects/:id/delete/confirm", a.deleteProject)

		adminGroup.GET("/certificates/new", a.newCertificate)
		adminGroup.POST("/certificates/new", a.createCertificate)
		adminGroup.GET("/certificates/:id", a.editCertificate)
		adminGroup.POST("/certificates/:id", a.updateCertificate)
		adminGroup.POST("/certificates/:id/delete", a.confirmDelete("certificate"))
		adminGroup.POST("/certificates/:id/delete/confirm", a.deleteCertificate)

		adminGroup.GET("/journey/new", a.newJourneyItem)
		adminGroup.POST("/journey/new", a.createJourneyItem)
		adminGroup.GET("/journey/:id", a.editJourneyItem)
		adminGroup.POST("/journey/:id", a.updateJourneyItem)
		adminGroup.POST("/journey/:id/delete", a.confirmDelete("journey"))
		adminGroup.POST("/journey/:id/delete/confirm", a.deleteJourneyItem)

		adminGroup.GET("/skills/new", a.newSkill)
		adminGroup.POST("/skills/new", a.createSkill)
		adminGroup.GET("/skills/:id", a.editSkill)
		adminGroup.POST("/skills/:id", a.updateSkill)
		adminGroup.POST("/skills/:id/delete", a.confirmDelete("skill"))
		adminGroup.POST("/skills/:id/delete/confirm", a.deleteSkill)

		adminGroup.POST("/messages/:id/read", a.toggleMessageRead)
		adminGroup.POST("/messages/:id/delete", a.confirmDelete("message"))
		adminGroup.POST("/messages/:id/delete/confirm", a.deleteMessage)
	}
}

// requireAuth checks the session flag. A malformed stored value is treated
// as logged out and cleared.
func (a *AdminModule) requireAuth(c *gin.Context) {
	session := sessions.Default(c)
	flag := session.Get(sessionKey)

	loggedIn, ok := flag.(bool)
	if flag != nil && !ok {
		session.Clear()
		session.Save()
	}
	if !ok || !loggedIn {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Next()
}

func (a *AdminModule) loginPage(c *gin.Context) {
	session := sessions.Default(c)
	if loggedIn, ok := session.Get(sessionKey).(bool); ok && loggedIn {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

func (a *AdminModule) loginPost(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if err := a.authn.Login(email, password); err != nil {
		logger.Logger.Warnf("failed admin login for %q", email)
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"error": err.Error(),
			"email": email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKey, true)
	session.Save()

	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/login")
}

// dashboard loads every list in parallel; the reads are independent and
// have no ordering requirement between them.
func (a *AdminModule) dashboard(c *gin.Context) {
	var (
		profile      *models.Profile
		projects     []models.Project
		certificates []models.Certificate
		journey      []models.JourneyItem
		skills       []models.Skill
		messages     []models.Message
	)

	var g errgroup.Group
	g.Go(func() (err error) { projects, err = a.store.ListProjects(); return })
	g.Go(func() (err error) { certificates, err = a.store.ListCertificates(); return })
	g.Go(func() (err error) { journey, err = a.store.ListJourneyItems(); return })
	g.Go(func() (err error) { skills, err = a.store.ListSkills(); return })
	g.Go(func() (err error) { messages, err = a.store.ListMessages(); return })
	g.Go(func() error {
		p, err := a.store.GetProfile()
		if err == nil {
			profile = p
		}
		// a missing profile just means nothing has been saved yet
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Logger.Errorf("dashboard load failed: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Error loading dashboard data",
		})
		return
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"profile":      profile,
		"projects":     projects,
		"certificates": certificates,
		"journey":      journey,
		"skills":       skills,
		"messages":     messages,
		"unread":       unread,
	})
}

func (a *AdminModule) refresh(c *gin.Context) {
	a.cache.Flush()
	c.Redirect(http.StatusFound, "/admin")
}

// confirmDelete renders the pending-confirmation page for any entity type.
// Cancel is a plain link back to the dashboard; nothing is touched until
// the confirm action posts.
func (a *AdminModule) confirmDelete(entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin_confirm_delete.html", gin.H{
			"entity": entity,
			"id":     c.Param("id"),
			"title":  c.PostForm("title"),
			"action": c.Request.URL.Path + "/confirm",
		})
	}
}

// ----- profile -----

func (a *AdminModule) editProfile(c *gin.Context) {
	profile, err := a.store.GetProfile()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Logger.Errorf("loading profile: %v", err)
			c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
				"error": "Error loading profile",
			})
			return
		}
		profile = &models.Profile{}
	}

	c.HTML(http.StatusOK, "admin_profile.html", gin.H{"profile": profile})
}

func (a *AdminModule) updateProfile(c *gin.Context) {
	profile := &models.Profile{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		Bio:       c.PostForm("bio"),
		Location:  c.PostForm("location"),
		Github:    c.PostForm("github"),
		Linkedin:  c.PostForm("linkedin"),
		Instagram: c.PostForm("instagram"),
		Website:   c.PostForm("website"),
		Titles:    splitList(c.PostForm("titles")),
	}

	if existing, err := a.store.GetProfile(); err == nil {
		profile.Avatar = existing.Avatar
		profile.Resume = existing.Resume
		profile.Stats = existing.Stats
	}

	result := validation.ValidateProfile(profile)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_profile.html", gin.H{
			"profile": profile,
			"errors":  result.Errors,
		})
		return
	}

	// Uploads happen before the record write; the resulting URLs are merged
	// into the validated data.
	if url, err := a.saveUpload(c, "avatar", "profile", validation.CheckImage); err != nil {
		a.renderUploadError(c, "admin_profile.html", gin.H{"profile": profile}, err)
		return
	} else if url != "" {
		profile.Avatar = url
	}

	if url, err := a.saveUpload(c, "resume", "profile", validation.CheckResume); err != nil {
		a.renderUploadError(c, "admin_profile.html", gin.H{"profile": profile}, err)
		return
	} else if url != "" {
		profile.Resume = url
	}

	if err := a.store.SaveProfile(profile); err != nil {
		logger.Logger.Errorf("saving profile: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_profile.html", gin.H{
			"profile": profile,
			"error":   "Error saving profile, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeyProfile)
	c.Redirect(http.StatusFound, "/admin")
}

// ----- projects -----

func (a *AdminModule) newProject(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_project_form.html", gin.H{"project": &models.Project{}})
}

func (a *AdminModule) editProject(c *gin.Context) {
	project, ok := a.findProject(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "admin_project_form.html", gin.H{"project": project})
}

func (a *AdminModule) createProject(c *gin.Context) {
	project := parseProjectForm(c)

	result := validation.ValidateProject(project)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_project_form.html", gin.H{
			"project": project,
			"errors":  result.Errors,
		})
		return
	}

	if url, err := a.saveUpload(c, "thumbnail", "projects", validation.CheckImage); err != nil {
		a.renderUploadError(c, "admin_project_form.html", gin.H{"project": project}, err)
		return
	} else if url != "" {
		project.ThumbnailURL = url
	}

	if _, err := a.store.CreateProject(project); err != nil {
		logger.Logger.Errorf("creating project: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_project_form.html", gin.H{
			"project": project,
			"error":   "Error saving project, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeyProjects)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) updateProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	project := parseProjectForm(c)
	project.ID = id
	project.ThumbnailURL = c.PostForm("thumbnailUrl")

	result := validation.ValidateProject(project)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_project_form.html", gin.H{
			"project": project,
			"errors":  result.Errors,
		})
		return
	}

	if url, err := a.saveUpload(c, "thumbnail", "projects", validation.CheckImage); err != nil {
		a.renderUploadError(c, "admin_project_form.html", gin.H{"project": project}, err)
		return
	} else if url != "" {
		project.ThumbnailURL = url
	}

	if err := a.store.UpdateProject(id, store.ProjectPatch(project)); err != nil {
		logger.Logger.Errorf("updating project %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "admin_project_form.html", gin.H{
			"project": project,
			"error":   "Error saving project, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeyProjects)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) deleteProject(c *gin.Context) {
	a.deleteByID(c, cache.KeyProjects, a.store.DeleteProject)
}

// ----- certificates -----

func (a *AdminModule) newCertificate(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_certificate_form.html", gin.H{"certificate": &models.Certificate{}})
}

func (a *AdminModule) editCertificate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	certificates, err := a.store.ListCertificates()
	if err != nil {
		logger.Logger.Errorf("loading certificates: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{"error": "Error loading certificate"})
		return
	}
	for i := range certificates {
		if certificates[i].ID == id {
			c.HTML(http.StatusOK, "admin_certificate_form.html", gin.H{"certificate": &certificates[i]})
			return
		}
	}
	c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Certificate not found"})
}

func (a *AdminModule) createCertificate(c *gin.Context) {
	certificate := parseCertificateForm(c)

	result := validation.ValidateCertificate(certificate)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_certificate_form.html", gin.H{
			"certificate": certificate,
			"errors":      result.Errors,
		})
		return
	}

	if url, err := a.saveUpload(c, "image", "certificates", validation.CheckImage); err != nil {
		a.renderUploadError(c, "admin_certificate_form.html", gin.H{"certificate": certificate}, err)
		return
	} else if url != "" {
		certificate.ImageURL = url
	}

	if _, err := a.store.CreateCertificate(certificate); err != nil {
		logger.Logger.Errorf("creating certificate: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_certificate_form.html", gin.H{
			"certificate": certificate,
			"error":       "Error saving certificate, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeyCertificates)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) updateCertificate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	certificate := parseCertificateForm(c)
	certificate.ID = id
	certificate.ImageURL = c.PostForm("imageUrl")

	result := validation.ValidateCertificate(certificate)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_certificate_form.html", gin.H{
			"certificate": certificate,
			"errors":      result.Errors,
		})
		return
	}

	if url, err := a.saveUpload(c, "image", "certificates", validation.CheckImage); err != nil {
		a.renderUploadError(c, "admin_certificate_form.html", gin.H{"certificate": certificate}, err)
		return
	} else if url != "" {
		certificate.ImageURL = url
	}

	if err := a.store.UpdateCertificate(id, store.CertificatePatch(certificate)); err != nil {
		logger.Logger.Errorf("updating certificate %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "admin_certificate_form.html", gin.H{
			"certificate": certificate,
			"error":       "Error saving certificate, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeyCertificates)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) deleteCertificate(c *gin.Context) {
	a.deleteByID(c, cache.KeyCertificates, a.store.DeleteCertificate)
}

// ----- journey -----

func (a *AdminModule) newJourneyItem(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_journey_form.html", gin.H{"item": &models.JourneyItem{}})
}

func (a *AdminModule) editJourneyItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	items, err := a.store.ListJourneyItems()
	if err != nil {
		logger.Logger.Errorf("loading journey items: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{"error": "Error loading journey item"})
		return
	}
	for i := range items {
		if items[i].ID == id {
			c.HTML(http.StatusOK, "admin_journey_form.html", gin.H{"item": &items[i]})
			return
		}
	}
	c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Journey item not found"})
}

func (a *AdminModule) createJourneyItem(c *gin.Context) {
	item := parseJourneyForm(c)

	result := validation.ValidateJourneyItem(item)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_journey_form.html", gin.H{
			"item":   item,
			"errors": result.Errors,
		})
		return
	}

	if _, err := a.store.CreateJourneyItem(item); err != nil {
		logger.Logger.Errorf("creating journey item: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_journey_form.html", gin.H{
			"item":  item,
			"error": "Error saving journey item, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeyJourney)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) updateJourneyItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item := parseJourneyForm(c)
	item.ID = id

	result := validation.ValidateJourneyItem(item)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_journey_form.html", gin.H{
			"item":   item,
			"errors": result.Errors,
		})
		return
	}

	if err := a.store.UpdateJourneyItem(id, store.JourneyItemPatch(item)); err != nil {
		logger.Logger.Errorf("updating journey item %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "admin_journey_form.html", gin.H{
			"item":  item,
			"error": "Error saving journey item, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeyJourney)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) deleteJourneyItem(c *gin.Context) {
	a.deleteByID(c, cache.KeyJourney, a.store.DeleteJourneyItem)
}

// ----- skills -----

func (a *AdminModule) newSkill(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_skill_form.html", gin.H{"skill": &models.Skill{}})
}

func (a *AdminModule) editSkill(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	skills, err := a.store.ListSkills()
	if err != nil {
		logger.Logger.Errorf("loading skills: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{"error": "Error loading skill"})
		return
	}
	for i := range skills {
		if skills[i].ID == id {
			c.HTML(http.StatusOK, "admin_skill_form.html", gin.H{"skill": &skills[i]})
			return
		}
	}
	c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Skill not found"})
}

func (a *AdminModule) createSkill(c *gin.Context) {
	skill := parseSkillForm(c)

	result := validation.ValidateSkill(skill)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_skill_form.html", gin.H{
			"skill":  skill,
			"errors": result.Errors,
		})
		return
	}

	if _, err := a.store.CreateSkill(skill); err != nil {
		logger.Logger.Errorf("creating skill: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_skill_form.html", gin.H{
			"skill": skill,
			"error": "Error saving skill, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeySkills)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) updateSkill(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	skill := parseSkillForm(c)
	skill.ID = id

	result := validation.ValidateSkill(skill)
	if !result.Valid {
		c.HTML(http.StatusBadRequest, "admin_skill_form.html", gin.H{
			"skill":  skill,
			"errors": result.Errors,
		})
		return
	}

	if err := a.store.UpdateSkill(id, store.SkillPatch(skill)); err != nil {
		logger.Logger.Errorf("updating skill %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "admin_skill_form.html", gin.H{
			"skill": skill,
			"error": "Error saving skill, please try again",
		})
		return
	}

	a.cache.Invalidate(cache.KeySkills)
	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) deleteSkill(c *gin.Context) {
	a.deleteByID(c, cache.KeySkills, a.store.DeleteSkill)
}

// ----- messages -----

func (a *AdminModule) toggleMessageRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	read := c.PostForm("read") == "1"
	if err := a.store.SetMessageRead(id, read); err != nil {
		logger.Logger.Errorf("toggling message %d read flag: %v", id, err)
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Error updating message",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) deleteMessage(c *gin.Context) {
	a.deleteByID(c, "", a.store.DeleteMessage)
}

// ----- shared helpers -----

func (a *AdminModule) deleteByID(c *gin.Context, cacheKey string, del func(uint) error) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := del(id); err != nil {
		logger.Logger.Errorf("deleting record %d: %v", id, err)
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Error deleting record",
		})
		return
	}

	if cacheKey != "" {
		a.cache.Invalidate(cacheKey)
	}
	c.Redirect(http.StatusFound, "/admin")
}

// saveUpload validates and stores an optionally attached file. An absent
// file is not an error; a rejected one is reported before any disk write.
func (a *AdminModule) saveUpload(c *gin.Context, field, entity string, check func(int64, string) error) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	if err := check(header.Size, header.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	url, err := a.files.Save(file, uploads.Path(entity, header.Filename))
	if err != nil {
		return "", err
	}
	return url, nil
}

func (a *AdminModule) renderUploadError(c *gin.Context, tmpl string, data gin.H, err error) {
	logger.Logger.Warnf("upload rejected: %v", err)
	data["error"] = err.Error()
	c.HTML(http.StatusBadRequest, tmpl, data)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.HTML(http.StatusBadRequest, "admin_error.html", gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (a *AdminModule) findProject(c *gin.Context) (*models.Project, bool) {
	id, ok := paramID(c)
	if !ok {
		return nil, false
	}

	projects, err := a.store.ListProjects()
	if err != nil {
		logger.Logger.Errorf("loading projects: %v", err)
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{"error": "Error loading project"})
		return nil, false
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], true
		}
	}
	c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Project not found"})
	return nil, false
}

func parseProjectForm(c *gin.Context) *models.Project {
	return &models.Project{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
		ProjectURL:   c.PostForm("projectUrl"),
		RepoURL:      c.PostForm("repoUrl"),
		Technologies: splitList(c.PostForm("technologies")),
		Featured:     c.PostForm("featured") == "1",
		Stars:        atoiOrZero(c.PostForm("stars")),
		Order:        atoiOrZero(c.PostForm("order")),
	}
}

func parseCertificateForm(c *gin.Context) *models.Certificate {
	return &models.Certificate{
		Title:          c.PostForm("title"),
		Issuer:         c.PostForm("issuer"),
		Date:           c.PostForm("date"),
		Description:    c.PostForm("description"),
		CertificateURL: c.PostForm("certificateUrl"),
		Category:       c.PostForm("category"),
		Order:          atoiOrZero(c.PostForm("order")),
	}
}

func parseJourneyForm(c *gin.Context) *models.JourneyItem {
	return &models.JourneyItem{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Date:        c.PostForm("date"),
		Order:       atoiOrZero(c.PostForm("order")),
	}
}

func parseSkillForm(c *gin.Context) *models.Skill {
	return &models.Skill{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Proficiency: atoiOrZero(c.PostForm("proficiency")),
		IconName:    c.PostForm("iconName"),
		Color:       c.PostForm("color"),
	}
}

// splitList turns a comma-separated form value into a list, dropping blanks.
func splitList(s string) models.StringList {
	var out models.StringList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// atoiOrZero parses lenient numeric form input; anything unparseable is 0
// and left for validation to reject when negative values matter.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
