package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/securecargo/website-api/internal/api/handler"
	"github.com/securecargo/website-api/internal/api/middleware"
	"github.com/securecargo/website-api/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers. Redis is
// nil when the deployment runs with the in-memory rate limiter.
type Dependencies struct {
	Auth    ports.AuthService
	Content ports.ContentService
	Intake  ports.IntakeService
	Mongo   *mongo.Database
	Redis   *redis.Client
	BaseURL string
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("securecargo"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	contentHandler := handler.NewContentHandler(deps.Content)
	contactHandler := handler.NewContactHandler(deps.Intake)
	seoHandler := handler.NewSEOHandler(deps.Content, deps.BaseURL)
	healthHandler := handler.NewHealthHandler(deps.Mongo, deps.Redis)

	requireAuth := middleware.Auth(deps.Auth)

	// --- Public routes ---
	e.GET("/api/services", contentHandler.PublicServices)
	e.GET("/api/services/:slug", contentHandler.PublicServiceBySlug)
	e.GET("/api/gallery", contentHandler.PublicGallery)
	e.GET("/api/client-logos", contentHandler.PublicClientLogos)
	e.POST("/api/contact", contactHandler.Submit)
	e.GET("/sitemap.xml", seoHandler.Sitemap)
	e.GET("/robots.txt", seoHandler.Robots)

	// --- Auth ---
	e.POST("/api/admin/login", authHandler.Login)
	e.GET("/api/admin/verify", authHandler.Verify, requireAuth)
	e.GET("/api/user", authHandler.CurrentUser, requireAuth)

	// --- Admin routes (bearer token required) ---
	admin := e.Group("/api/admin", requireAuth)

	admin.GET("/users", authHandler.ListUsers)
	admin.POST("/users", authHandler.CreateUser)
	admin.PUT("/users/:id/password", authHandler.ChangePassword)

	admin.GET("/services", contentHandler.AdminServices)
	admin.GET("/services/:id", contentHandler.AdminService)
	admin.POST("/services", contentHandler.CreateService)
	admin.PATCH("/services/:id", contentHandler.UpdateService)
	admin.DELETE("/services/:id", contentHandler.DeleteService)

	admin.GET("/gallery", contentHandler.AdminGallery)
	admin.GET("/gallery/:id", contentHandler.AdminGalleryImage)
	admin.POST("/gallery", contentHandler.CreateGalleryImage)
	admin.PATCH("/gallery/:id", contentHandler.UpdateGalleryImage)
	admin.DELETE("/gallery/:id", contentHandler.DeleteGalleryImage)

	admin.GET("/client-logos", contentHandler.AdminClientLogos)
	admin.GET("/client-logos/:id", contentHandler.AdminClientLogo)
	admin.POST("/client-logos", contentHandler.CreateClientLogo)
	admin.PATCH("/client-logos/:id", contentHandler.UpdateClientLogo)
	admin.DELETE("/client-logos/:id", contentHandler.DeleteClientLogo)

	admin.GET("/contact-submissions", contactHandler.ListSubmissions)
	admin.GET("/contact-submissions/export/csv", contactHandler.ExportCSV)
	admin.DELETE("/contact-submissions/:id", contactHandler.DeleteSubmission)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
