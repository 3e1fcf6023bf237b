package handler

import (
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgPostNotFound = "Post not found"

type BlogHandler struct {
	uc usecase.ContentUsecase
}

func NewBlogHandler(uc usecase.ContentUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

func (h *BlogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/posts", h.List)
	r.Get("/blog", h.List)
	r.Get("/posts/:id", h.Get)
}

func (h *BlogHandler) List(c fiber.Ctx) error {
	posts, err := h.uc.ListPosts(c.Context())
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, msgPostNotFound)
	}
	return response.OK(c, posts)
}

func (h *BlogHandler) Get(c fiber.Ctx) error {
	post, err := h.uc.GetPost(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, msgPostNotFound)
	}
	return response.OK(c, post)
}
