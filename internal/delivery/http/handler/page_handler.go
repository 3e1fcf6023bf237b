package handler

import (
	"sitebuilder/internal/delivery/http/dto"
	"sitebuilder/internal/delivery/http/middleware"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgPageNotFound = "Page not found"

type PageHandler struct {
	uc usecase.ContentUsecase
}

func NewPageHandler(uc usecase.ContentUsecase) *PageHandler {
	return &PageHandler{uc: uc}
}

func (h *PageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/pages/:name", h.Get)
}

func (h *PageHandler) RegisterAdminRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil || guard == nil {
		return
	}

	r.Post("/pages/:name", guard, h.Upsert)
}

func (h *PageHandler) Get(c fiber.Ctx) error {
	page, err := h.uc.GetPage(c.Context(), c.Params("name"))
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, msgPageNotFound)
	}
	return response.OK(c, page)
}

func (h *PageHandler) Upsert(c fiber.Ctx) error {
	data := map[string]any{}
	if err := bindBody(c, &data); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Page body must be a JSON object", nil, err)
	}

	page, err := h.uc.UpsertPage(c.Context(), c.Params("name"), data)
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, msgPageNotFound)
	}
	return response.OK(c, dto.PageSavedResponse{Status: "ok", Page: page})
}
