package handler

import (
	"sitebuilder/internal/delivery/http/dto"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SeedHandler struct {
	uc usecase.SeedUsecase
}

func NewSeedHandler(uc usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

func (h *SeedHandler) RegisterAdminRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil || guard == nil {
		return
	}

	r.Get("/ensure_seed", guard, h.EnsureSeed)
	r.Post("/ensure_seed", guard, h.EnsureSeed)
}

func (h *SeedHandler) EnsureSeed(c fiber.Ctx) error {
	summary, err := h.uc.EnsureSeed(c.Context())
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, response.MessageNotFound)
	}
	return response.OK(c, dto.SeedResponse{Status: "seeded_or_exists", Summary: summary})
}
