package app

import (
	"context"
	"fmt"
	"strings"

	"sitebuilder/internal/config"
	"sitebuilder/internal/delivery/http/handler"
	"sitebuilder/internal/delivery/http/middleware"
	"sitebuilder/internal/delivery/http/routes"
	"sitebuilder/internal/usecase"
	"sitebuilder/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/rs/zerolog"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app over an initialised container.
func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: cfg.App.BodyLimit,
	})

	registerGlobalMiddleware(f, cfg, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires every dependency and starts the admin feed hub. The
// returned cleanup stops the hub and releases connections.
func Bootstrap(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, func() error { return nil }, err
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger zerolog.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	accessMw := middleware.NewAccessLogMiddleware(logger.With().Str("component", "http").Logger())

	app.Use(accessMw.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CORSOrigins,
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:  []string{fiber.HeaderContentType, fiber.HeaderAuthorization},
		ExposeHeaders: []string{fiber.HeaderContentType, fiber.HeaderAuthorization},
	}))
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	log := c.Logger
	resumeUC := usecase.NewResumeUsecase(c.Parser, c.Scorer, c.Storage, log)
	contentUC := usecase.NewContentUsecase(c.Store, c.Notifier, log)
	appsUC := usecase.NewApplicationUsecase(c.Store.Applications, resumeUC, c.Notifier, log)
	portfolioUC := usecase.NewPortfolioUsecase(c.Store.Portfolios, resumeUC, c.Generator, log)
	assistantUC := usecase.NewAssistantUsecase(c.Store, c.Generator, log)
	seedUC := usecase.NewSeedUsecase(c.Store, c.Cache, log)
	authUC := usecase.NewAuthUsecase(c.Config.Admin.Whitelist, c.Config.Admin.PasswordHash, c.JWT, log)

	var cachePinger usecase.Pinger
	if c.Cache.Available() {
		cachePinger = c.Cache
	}
	statusUC := usecase.NewStatusUsecase(c.Store, cachePinger, c.Generator)

	feed := ws.NewHandler(c.Hub, c.Config.App.CORSOrigins, log.With().Str("component", "ws").Logger())

	reg := routes.NewRegistry(routes.Handlers{
		Health:    handler.NewHealthHandler(statusUC),
		Pages:     handler.NewPageHandler(contentUC),
		Jobs:      handler.NewJobsHandler(contentUC, appsUC),
		Portfolio: handler.NewPortfolioHandler(portfolioUC),
		Resume:    handler.NewResumeHandler(resumeUC),
		Assistant: handler.NewAssistantHandler(assistantUC),
		Blog:      handler.NewBlogHandler(contentUC),
		Auth:      handler.NewAuthHandler(authUC),
		Contact:   handler.NewContactHandler(contentUC),
		Seed:      handler.NewSeedHandler(seedUC),
		AdminFeed: feed.HandleAdminFeed,
	}, middleware.NewAuthMiddleware(c.JWT), c.Config.Admin.Open)
	reg.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
