package handler

import (
	"sitebuilder/internal/delivery/http/dto"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const rootMessage = "AI Website Builder Backend Running"

type HealthHandler struct {
	uc usecase.StatusUsecase
}

func NewHealthHandler(uc usecase.StatusUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return response.OK(c, dto.RootResponse{Message: rootMessage, OpenAI: h.uc.GeneratorEnabled()})
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	st := h.uc.Health(c.Context())
	status := fiber.StatusOK
	if st.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, dto.HealthResponse{Status: st.Status, Store: st.Store, Cache: st.Cache})
}
