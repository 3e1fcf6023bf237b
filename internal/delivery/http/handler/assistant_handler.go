package handler

import (
	"sitebuilder/internal/delivery/http/dto"
	"sitebuilder/internal/delivery/http/middleware"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	msgQuestionRequired = "Provide 'question' in body"
	msgContentRequired  = "Provide 'content' in JSON body"
	msgBriefRequired    = "Provide 'brief' in JSON body"
	msgTextRequired     = "Provide 'text' to convert to speech-friendly form"
)

type AssistantHandler struct {
	uc usecase.AssistantUsecase
}

func NewAssistantHandler(uc usecase.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

func (h *AssistantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/chatbot", h.Chat)
	r.Post("/ai/seo_analyze", h.SEOAnalyze)
	r.Post("/ai/theme", h.Theme)
	r.Post("/ai/auto_build", h.AutoBuild)
	r.Post("/voice/text", h.VoiceText)
}

type validatable interface {
	Validate() error
}

// decode binds and validates req, reporting msg on any failure.
func decode(c fiber.Ctx, req validatable, msg string) error {
	if err := bindBody(c, req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, err)
	}
	return nil
}

func (h *AssistantHandler) Chat(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := decode(c, &req, msgQuestionRequired); err != nil {
		return err
	}

	answer, err := h.uc.Chat(c.Context(), req.Question)
	if err != nil {
		return mapUsecaseError(err, msgQuestionRequired, response.MessageNotFound)
	}
	return response.OK(c, dto.AnswerResponse{Answer: answer})
}

func (h *AssistantHandler) SEOAnalyze(c fiber.Ctx) error {
	var req dto.SEORequest
	if err := decode(c, &req, msgContentRequired); err != nil {
		return err
	}

	report, err := h.uc.SEOAnalyze(c.Context(), req.Content)
	if err != nil {
		return mapUsecaseError(err, msgContentRequired, response.MessageNotFound)
	}
	if report.FromModel {
		return response.OK(c, dto.SEOAnalysisResponse{Analysis: report.Analysis})
	}
	return response.OK(c, dto.SEOReportResponse{Keywords: report.Keywords, Score: report.Score, Meta: report.Meta})
}

func (h *AssistantHandler) Theme(c fiber.Ctx) error {
	var req dto.ThemeRequest
	if err := decode(c, &req, response.MessageBadRequest); err != nil {
		return err
	}

	res, err := h.uc.Theme(c.Context(), req.Tone)
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, response.MessageNotFound)
	}
	if res.Theme == nil {
		return response.OK(c, dto.ThemeSuggestionResponse{ThemeSuggestion: res.Suggestion})
	}
	return response.OK(c, dto.ThemeResponse{Theme: res.Theme})
}

func (h *AssistantHandler) AutoBuild(c fiber.Ctx) error {
	var req dto.AutoBuildRequest
	if err := decode(c, &req, msgBriefRequired); err != nil {
		return err
	}

	site, err := h.uc.AutoBuild(c.Context(), req.Brief)
	if err != nil {
		return mapUsecaseError(err, msgBriefRequired, response.MessageNotFound)
	}
	return response.OK(c, dto.GeneratedSiteResponse{Generated: site})
}

func (h *AssistantHandler) VoiceText(c fiber.Ctx) error {
	var req dto.VoiceTextRequest
	if err := decode(c, &req, msgTextRequired); err != nil {
		return err
	}

	text, err := h.uc.VoiceText(c.Context(), req.Text)
	if err != nil {
		return mapUsecaseError(err, msgTextRequired, response.MessageNotFound)
	}
	return response.OK(c, dto.SpeechTextResponse{SpeechText: text})
}
