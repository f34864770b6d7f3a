// Package api is the JSON surface over the same repository the admin
// dashboard uses. Validation failures return 400 with a field-keyed error
// map, missing/broken backends return 500 with a message, deletes return
// 204, and login is a plaintext comparison that issues no token.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"portfolio/auth"
	"portfolio/cache"
	logger "portfolio/loggers"
	"portfolio/models"
	"portfolio/store"
	"portfolio/validation"
)

type APIModule struct {
	store store.Store
	cache *cache.Cache
	authn auth.Authenticator
}

func NewAPIModule(s store.Store, c *cache.Cache, authn auth.Authenticator) *APIModule {
	return &APIModule{store: s, cache: c, authn: authn}
}

func (a *APIModule) RegisterRoutes(router *gin.Engine, allowedOrigins []string) {
	// engine-level so preflight requests get answered even though no OPTIONS
	// route is registered
	router.Use(corsMiddleware(allowedOrigins))

	group := router.Group("/api")
	{
		group.GET("/profile", a.getProfile)
		group.PUT("/profile", a.updateProfile)

		group.GET("/skills", a.listSkills)
		group.POST("/skills", a.createSkill)
		group.PUT("/skills/:id", a.updateSkill)
		group.DELETE("/skills/:id", a.deleteSkill)

		group.GET("/journey", a.listJourney)
		group.POST("/journey", a.createJourneyItem)
		group.PUT("/journey/:id", a.updateJourneyItem)
		group.DELETE("/journey/:id", a.deleteJourneyItem)

		group.GET("/projects", a.listProjects)
		group.POST("/projects", a.createProject)
		group.PUT("/projects/:id", a.updateProject)
		group.DELETE("/projects/:id", a.deleteProject)

		group.GET("/certificates", a.listCertificates)
		group.POST("/certificates", a.createCertificate)
		group.PUT("/certificates/:id", a.updateCertificate)
		group.DELETE("/certificates/:id", a.deleteCertificate)

		group.GET("/messages", a.listMessages)
		group.POST("/messages", a.createMessage)
		group.PUT("/messages/:id/read", a.markMessageRead)
		group.DELETE("/messages/:id", a.deleteMessage)

		group.POST("/login", a.login)
	}
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return func(c *gin.Context) {
		corsHandler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions &&
			c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// ----- profile -----

func (a *APIModule) getProfile(c *gin.Context) {
	profile, err := a.store.GetProfile()
	if err != nil {
		a.serverError(c, "Error fetching profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (a *APIModule) updateProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid profile data"})
		return
	}

	if result := validation.ValidateProfile(&profile); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid profile data", "errors": result.Errors})
		return
	}

	if err := a.store.SaveProfile(&profile); err != nil {
		a.serverError(c, "Error updating profile", err)
		return
	}

	a.cache.Invalidate(cache.KeyProfile)
	c.JSON(http.StatusOK, profile)
}

// ----- skills -----

func (a *APIModule) listSkills(c *gin.Context) {
	skills, err := a.store.ListSkills()
	if err != nil {
		a.serverError(c, "Error fetching skills", err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (a *APIModule) createSkill(c *gin.Context) {
	var skill models.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid skill data"})
		return
	}

	if result := validation.ValidateSkill(&skill); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid skill data", "errors": result.Errors})
		return
	}

	skill.ID = 0
	if _, err := a.store.CreateSkill(&skill); err != nil {
		a.serverError(c, "Error creating skill", err)
		return
	}

	a.cache.Invalidate(cache.KeySkills)
	c.JSON(http.StatusCreated, skill)
}

func (a *APIModule) updateSkill(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var skill models.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid skill data"})
		return
	}

	if result := validation.ValidateSkill(&skill); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid skill data", "errors": result.Errors})
		return
	}

	if err := a.store.UpdateSkill(id, store.SkillPatch(&skill)); err != nil {
		a.serverError(c, "Error updating skill", err)
		return
	}

	a.cache.Invalidate(cache.KeySkills)
	skill.ID = id
	c.JSON(http.StatusOK, skill)
}

func (a *APIModule) deleteSkill(c *gin.Context) {
	a.deleteByID(c, cache.KeySkills, a.store.DeleteSkill, "Error deleting skill")
}

// ----- journey -----

func (a *APIModule) listJourney(c *gin.Context) {
	items, err := a.store.ListJourneyItems()
	if err != nil {
		a.serverError(c, "Error fetching journey items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *APIModule) createJourneyItem(c *gin.Context) {
	var item models.JourneyItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid journey item data"})
		return
	}

	if result := validation.ValidateJourneyItem(&item); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid journey item data", "errors": result.Errors})
		return
	}

	item.ID = 0
	if _, err := a.store.CreateJourneyItem(&item); err != nil {
		a.serverError(c, "Error creating journey item", err)
		return
	}

	a.cache.Invalidate(cache.KeyJourney)
	c.JSON(http.StatusCreated, item)
}

func (a *APIModule) updateJourneyItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var item models.JourneyItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid journey item data"})
		return
	}

	if result := validation.ValidateJourneyItem(&item); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid journey item data", "errors": result.Errors})
		return
	}

	if err := a.store.UpdateJourneyItem(id, store.JourneyItemPatch(&item)); err != nil {
		a.serverError(c, "Error updating journey item", err)
		return
	}

	a.cache.Invalidate(cache.KeyJourney)
	item.ID = id
	c.JSON(http.StatusOK, item)
}

func (a *APIModule) deleteJourneyItem(c *gin.Context) {
	a.deleteByID(c, cache.KeyJourney, a.store.DeleteJourneyItem, "Error deleting journey item")
}

// ----- projects -----

func (a *APIModule) listProjects(c *gin.Context) {
	projects, err := a.store.ListProjects()
	if err != nil {
		a.serverError(c, "Error fetching projects", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (a *APIModule) createProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data"})
		return
	}

	if result := validation.ValidateProject(&project); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data", "errors": result.Errors})
		return
	}

	project.ID = 0
	if _, err := a.store.CreateProject(&project); err != nil {
		a.serverError(c, "Error creating project", err)
		return
	}

	a.cache.Invalidate(cache.KeyProjects)
	c.JSON(http.StatusCreated, project)
}

func (a *APIModule) updateProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data"})
		return
	}

	if result := validation.ValidateProject(&project); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data", "errors": result.Errors})
		return
	}

	if err := a.store.UpdateProject(id, store.ProjectPatch(&project)); err != nil {
		a.serverError(c, "Error updating project", err)
		return
	}

	a.cache.Invalidate(cache.KeyProjects)
	project.ID = id
	c.JSON(http.StatusOK, project)
}

func (a *APIModule) deleteProject(c *gin.Context) {
	a.deleteByID(c, cache.KeyProjects, a.store.DeleteProject, "Error deleting project")
}

// ----- certificates -----

func (a *APIModule) listCertificates(c *gin.Context) {
	certificates, err := a.store.ListCertificates()
	if err != nil {
		a.serverError(c, "Error fetching certificates", err)
		return
	}
	c.JSON(http.StatusOK, certificates)
}

func (a *APIModule) createCertificate(c *gin.Context) {
	var certificate models.Certificate
	if err := c.ShouldBindJSON(&certificate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid certificate data"})
		return
	}

	if result := validation.ValidateCertificate(&certificate); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid certificate data", "errors": result.Errors})
		return
	}

	certificate.ID = 0
	if _, err := a.store.CreateCertificate(&certificate); err != nil {
		a.serverError(c, "Error creating certificate", err)
		return
	}

	a.cache.Invalidate(cache.KeyCertificates)
	c.JSON(http.StatusCreated, certificate)
}

func (a *APIModule) updateCertificate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var certificate models.Certificate
	if err := c.ShouldBindJSON(&certificate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid certificate data"})
		return
	}

	if result := validation.ValidateCertificate(&certificate); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid certificate data", "errors": result.Errors})
		return
	}

	if err := a.store.UpdateCertificate(id, store.CertificatePatch(&certificate)); err != nil {
		a.serverError(c, "Error updating certificate", err)
		return
	}

	a.cache.Invalidate(cache.KeyCertificates)
	certificate.ID = id
	c.JSON(http.StatusOK, certificate)
}

func (a *APIModule) deleteCertificate(c *gin.Context) {
	a.deleteByID(c, cache.KeyCertificates, a.store.DeleteCertificate, "Error deleting certificate")
}

// ----- messages -----

func (a *APIModule) listMessages(c *gin.Context) {
	messages, err := a.store.ListMessages()
	if err != nil {
		a.serverError(c, "Error fetching messages", err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (a *APIModule) createMessage(c *gin.Context) {
	var message models.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message data"})
		return
	}

	if result := validation.ValidateMessage(&message); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message data", "errors": result.Errors})
		return
	}

	message.ID = 0
	message.Read = false
	if _, err := a.store.CreateMessage(&message); err != nil {
		a.serverError(c, "Error creating message", err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (a *APIModule) markMessageRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := a.store.SetMessageRead(id, true); err != nil {
		a.serverError(c, "Error marking message as read", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "read": true})
}

func (a *APIModule) deleteMessage(c *gin.Context) {
	a.deleteByID(c, "", a.store.DeleteMessage, "Error deleting message")
}

// ----- login -----

func (a *APIModule) login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid login data"})
		return
	}

	if err := a.authn.Login(creds.Email, creds.Password); err != nil {
		logger.Logger.Warnf("failed api login for %q", creds.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	// no token is issued; the response just confirms the pair matched
	c.JSON(http.StatusOK, gin.H{"email": creds.Email, "isAdmin": true})
}

// ----- shared helpers -----

func (a *APIModule) deleteByID(c *gin.Context, cacheKey string, del func(uint) error, msg string) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := del(id); err != nil {
		a.serverError(c, msg, err)
		return
	}

	if cacheKey != "" {
		a.cache.Invalidate(cacheKey)
	}
	c.Status(http.StatusNoContent)
}

func (a *APIModule) serverError(c *gin.Context, msg string, err error) {
	logger.Logger.Errorf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
