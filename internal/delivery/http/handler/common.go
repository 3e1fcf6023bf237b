package handler

import (
	"errors"
	"io"

	"sitebuilder/internal/delivery/http/middleware"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const resumeFormKey = "resume"

// bindBody decodes a request body when one was sent. An empty body leaves out
// untouched so required field checks report the missing key.
func bindBody(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.Bind().Body(out)
}

// formFile reads an optional multipart file. A missing part or one without
// a filename yields nil.
func formFile(c fiber.Ctx, key string) (*usecase.UploadedFile, error) {
	fh, err := c.FormFile(key)
	if err != nil || fh == nil || fh.Filename == "" {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, middleware.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, middleware.Internal(err)
	}
	return &usecase.UploadedFile{Name: fh.Filename, Data: data}, nil
}

// mapUsecaseError turns usecase sentinels into client errors. badRequest is
// used for invalid input and missing uploads.
func mapUsecaseError(err error, badRequest, notFound string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrMissingFile):
		return middleware.NewAppError(fiber.StatusBadRequest, badRequest, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, notFound, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "invalid credentials", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "not allowed", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
