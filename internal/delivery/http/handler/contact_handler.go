package handler

import (
	"sitebuilder/internal/delivery/http/dto"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgMessageRequired = "Provide 'message' in JSON body"

type ContactHandler struct {
	uc usecase.ContentUsecase
}

func NewContactHandler(uc usecase.ContentUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/contact", h.Submit)
}

func (h *ContactHandler) RegisterAdminRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil || guard == nil {
		return
	}

	r.Get("/messages", guard, h.List)
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req dto.ContactRequest
	if err := decode(c, &req, msgMessageRequired); err != nil {
		return err
	}

	id, err := h.uc.SubmitContact(c.Context(), usecase.ContactInput{Name: req.Name, Email: req.Email, Message: req.Message})
	if err != nil {
		return mapUsecaseError(err, msgMessageRequired, response.MessageNotFound)
	}
	return response.Success(c, fiber.StatusCreated, dto.MessageReceivedResponse{Status: "received", MessageID: id})
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	msgs, err := h.uc.ListMessages(c.Context())
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, response.MessageNotFound)
	}
	return response.OK(c, msgs)
}
