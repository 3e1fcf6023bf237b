package handler

import (
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgResumeRequired = "Attach resume file (key name 'resume')"

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/resume/parse", h.Parse)
}

func (h *ResumeHandler) Parse(c fiber.Ctx) error {
	file, err := formFile(c, resumeFormKey)
	if err != nil {
		return err
	}

	out, err := h.uc.Analyze(c.Context(), file, c.FormValue("desired_skills"))
	if err != nil {
		return mapUsecaseError(err, msgResumeRequired, response.MessageNotFound)
	}
	return response.OK(c, out)
}
