package handler

import (
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	msgPortfolioResumeRequired = "Attach resume file (form-data key 'resume')"
	msgPortfolioNotFound       = "Not found"
)

type PortfolioHandler struct {
	uc usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/portfolio/generate", h.Generate)
	r.Get("/portfolio/:id", h.Get)
}

func (h *PortfolioHandler) Generate(c fiber.Ctx) error {
	file, err := formFile(c, resumeFormKey)
	if err != nil {
		return err
	}

	out, err := h.uc.Generate(c.Context(), file)
	if err != nil {
		return mapUsecaseError(err, msgPortfolioResumeRequired, msgPortfolioNotFound)
	}
	return response.OK(c, out)
}

func (h *PortfolioHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, msgPortfolioNotFound)
	}
	return response.HTML(c, fiber.StatusOK, p.HTML)
}
