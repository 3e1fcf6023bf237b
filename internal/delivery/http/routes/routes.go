package routes

import (
	"sitebuilder/internal/delivery/http/handler"
	"sitebuilder/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health    *handler.HealthHandler
	Pages     *handler.PageHandler
	Jobs      *handler.JobsHandler
	Portfolio *handler.PortfolioHandler
	Resume    *handler.ResumeHandler
	Assistant *handler.AssistantHandler
	Blog      *handler.BlogHandler
	Auth      *handler.AuthHandler
	Contact   *handler.ContactHandler
	Seed      *handler.SeedHandler
	AdminFeed fiber.Handler
}

type Registry struct {
	h         Handlers
	auth      *middleware.AuthMiddleware
	adminOpen bool
}

// NewRegistry wires the site routes. With adminOpen the content admin routes
// skip the token check; application and message listings always need it.
func NewRegistry(h Handlers, auth *middleware.AuthMiddleware, adminOpen bool) *Registry {
	return &Registry{h: h, auth: auth, adminOpen: adminOpen}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerFeed(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	if r.h.Pages != nil {
		r.h.Pages.RegisterRoutes(api)
	}
	if r.h.Jobs != nil {
		r.h.Jobs.RegisterRoutes(api)
	}
	if r.h.Portfolio != nil {
		r.h.Portfolio.RegisterRoutes(api)
	}
	if r.h.Resume != nil {
		r.h.Resume.RegisterRoutes(api)
	}
	if r.h.Assistant != nil {
		r.h.Assistant.RegisterRoutes(api)
	}
	if r.h.Blog != nil {
		r.h.Blog.RegisterRoutes(api)
	}
	if r.h.Contact != nil {
		r.h.Contact.RegisterRoutes(api)
	}
	if r.h.Auth != nil {
		r.h.Auth.RegisterRoutes(api.Group("/auth"))
	}

	r.registerAdmin(api.Group("/admin"))
}

func (r *Registry) registerAdmin(admin fiber.Router) {
	if r.auth == nil {
		return
	}
	strict := r.auth.Middleware()
	open := r.auth.Optional(r.adminOpen)

	if r.h.Pages != nil {
		r.h.Pages.RegisterAdminRoutes(admin, open)
	}
	if r.h.Seed != nil {
		r.h.Seed.RegisterAdminRoutes(admin, open)
	}
	if r.h.Jobs != nil {
		r.h.Jobs.RegisterAdminRoutes(admin, strict)
	}
	if r.h.Contact != nil {
		r.h.Contact.RegisterAdminRoutes(admin, strict)
	}
}

func (r *Registry) registerFeed(app *fiber.App) {
	if r.h.AdminFeed == nil || r.auth == nil {
		return
	}
	app.Get("/ws/admin", r.auth.Optional(r.adminOpen), r.h.AdminFeed)
}
