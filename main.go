package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio/admin"
	"portfolio/analytics"
	"portfolio/api"
	"portfolio/auth"
	"portfolio/cache"
	"portfolio/common"
	"portfolio/database"
	logger "portfolio/loggers"
	"portfolio/site"
	"portfolio/store"
	"portfolio/uploads"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger.Init()

	db, err := common.ConnectDb(os.Getenv("PORTFOLIO_DB"))
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	cookieStore := cookie.NewStore([]byte(sessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("portfolio-session", cookieStore))

	router.SetFuncMap(map[string]interface{}{
		"now": func() time.Time {
			return time.Now()
		},
		"domain": func() string {
			d := os.Getenv("DOMAIN")
			if d == "" {
				return "http://localhost:8080"
			}
			return d
		},
	})

	router.LoadHTMLGlob("*/views/*.html")

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./public/uploads"
	}
	router.Static("/public", "./public")

	repo := store.NewSQLStore(db)
	files := uploads.NewFileStore(uploadDir, os.Getenv("DOMAIN"))
	contentCache := cache.New(5*time.Minute, 10*time.Minute)
	authn := auth.NewSharedSecret()
	visits := analytics.NewAnalyticsModule(db)

	siteModule := site.NewSiteModule(repo, contentCache, visits)
	siteModule.RegisterRoutes(router)

	adminModule := admin.NewAdminModule(repo, files, authn, contentCache)
	adminModule.RegisterRoutes(router)

	apiModule := api.NewAPIModule(repo, contentCache, authn)
	apiModule.RegisterRoutes(router, allowedOrigins())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func allowedOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
