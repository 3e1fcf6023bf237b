package handler

import (
	"sitebuilder/internal/delivery/http/dto"
	"sitebuilder/internal/delivery/http/middleware"
	"sitebuilder/internal/pkg/response"
	"sitebuilder/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const msgJobTitleRequired = "Provide 'title' in JSON body"

type JobsHandler struct {
	content usecase.ContentUsecase
	apps    usecase.ApplicationUsecase
}

func NewJobsHandler(content usecase.ContentUsecase, apps usecase.ApplicationUsecase) *JobsHandler {
	return &JobsHandler{content: content, apps: apps}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.ListJobs)
	r.Post("/jobs", h.AddJob)
	r.Post("/apply", h.Apply)
}

func (h *JobsHandler) RegisterAdminRoutes(r fiber.Router, guard fiber.Handler) {
	if r == nil || guard == nil {
		return
	}

	r.Get("/applications", guard, h.ListApplications)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	jobs, err := h.content.ListJobs(c.Context())
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, response.MessageNotFound)
	}
	return response.OK(c, jobs)
}

func (h *JobsHandler) AddJob(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := bindBody(c, &req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, msgJobTitleRequired, nil, err)
	}

	job, err := h.content.AddJob(c.Context(), usecase.NewJobInput{
		ID:          req.ID,
		Title:       req.Title,
		Skills:      req.Skills,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		SalaryRange: req.SalaryRange,
	})
	if err != nil {
		return mapUsecaseError(err, msgJobTitleRequired, response.MessageNotFound)
	}
	return response.OK(c, dto.JobAddedResponse{Status: "job_added", Job: job})
}

func (h *JobsHandler) Apply(c fiber.Ctx) error {
	form := dto.ApplyForm{
		Name:          c.FormValue("name"),
		Email:         c.FormValue("email"),
		JobTitle:      c.FormValue("job_title"),
		DesiredSkills: c.FormValue("desired_skills"),
	}
	file, err := formFile(c, resumeFormKey)
	if err != nil {
		return err
	}

	app, err := h.apps.Apply(c.Context(), usecase.ApplyInput{
		Name:          form.Name,
		Email:         form.Email,
		JobTitle:      form.JobTitle,
		DesiredSkills: form.DesiredSkills,
		Resume:        file,
	})
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, response.MessageNotFound)
	}
	return response.OK(c, dto.ApplicationReceivedResponse{Status: "received", Application: app})
}

func (h *JobsHandler) ListApplications(c fiber.Ctx) error {
	apps, err := h.apps.List(c.Context())
	if err != nil {
		return mapUsecaseError(err, response.MessageBadRequest, response.MessageNotFound)
	}
	return response.OK(c, apps)
}
