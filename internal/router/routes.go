package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/linkedin-extractor/api/internal/config"
	"github.com/octobees/linkedin-extractor/api/internal/handler"
	middlewarepkg "github.com/octobees/linkedin-extractor/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Status  *handler.StatusHandler
	Webhook *handler.WebhookHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	e.GET("/", handlers.Status.Root)
	e.GET("/health", handlers.Status.Health)

	hooks := e.Group("/webhook", middlewarepkg.WebhookRateLimiter(cfg.RateLimitWebhook))
	hooks.POST("/profile", handlers.Webhook.Profile)
	hooks.POST("/company", handlers.Webhook.Company)
	hooks.POST("/posts", handlers.Webhook.Posts)
	hooks.POST("/posts/detailed", handlers.Webhook.PostsDetailed)
	hooks.POST("/extract-all", handlers.Webhook.ExtractAll)
}
