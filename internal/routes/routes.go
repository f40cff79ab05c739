package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/telkomportal/internal/config"
	"github.com/example/telkomportal/internal/handlers"
	"github.com/example/telkomportal/internal/middleware"
	"github.com/example/telkomportal/internal/scraper"
	"github.com/example/telkomportal/internal/services"
	"github.com/example/telkomportal/internal/session"
	"github.com/example/telkomportal/internal/storage"
	"github.com/example/telkomportal/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	kv := storage.NewGormStore(db)
	users := store.NewUserStore(kv)
	data := store.NewScrapedDataStore(kv)

	var provider scraper.Provider
	if cfg.ScraperMode == "live" {
		provider = scraper.NewLive(cfg.ScraperBaseURL, data)
	} else {
		provider = scraper.New(users, data, scraper.Delays{
			Login:   cfg.LoginDelay,
			Scrape:  cfg.ScrapeDelay,
			Refresh: cfg.RefreshDelay,
			Logout:  cfg.LogoutDelay,
		})
	}

	sessions := session.NewRegistry()

	var generator services.Generator
	if cfg.GeminiAPIKey != "" {
		generator = services.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		generator = services.CannedGenerator{}
	}
	catalog := services.NewCatalogService(cfg.CatalogCacheTTL)
	assist := services.NewAssistService(generator, catalog)

	portalHandler := handlers.NewPortalHandler(users, data, provider)
	authHandler := handlers.NewAuthHandler(users, sessions, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	assistHandler := handlers.NewAssistHandler(assist)

	api := app.Group("/api")

	// Provider-portal pipeline
	api.Post("/telkom", portalHandler.Handle)
	api.Get("/telkom", portalHandler.Status)

	// Public marketing catalog and chat assistant
	api.Get("/telkom-data", catalogHandler.Get)
	api.Post("/assist", assistHandler.Chat)

	// Portal auth and session
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	protected := auth.Group("", middleware.SessionMiddleware(cfg, sessions))
	protected.Get("/session", authHandler.Session)
	protected.Put("/session/profile", authHandler.UpdateProfile)
	protected.Post("/logout", authHandler.Logout)
}
