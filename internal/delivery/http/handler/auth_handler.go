package handler

import (
	"sitebuilder/internal/delivery/http/dto"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgCredentialsRequired = "email and password required"

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := decode(c, &req, msgCredentialsRequired); err != nil {
		return err
	}

	token, err := h.uc.Login(c.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err, msgCredentialsRequired, response.MessageNotFound)
	}
	return response.OK(c, dto.TokenResponse{Token: token})
}
