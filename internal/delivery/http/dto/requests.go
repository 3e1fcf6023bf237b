package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type CreateJobRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	SalaryRange string `json:"salary_range"`
}

func (r *CreateJobRequest) Validate() error { return validate.Struct(r) }

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
}

func (r *ChatRequest) Validate() error { return validate.Struct(r) }

type SEORequest struct {
	Content string `json:"content" validate:"required"`
}

func (r *SEORequest) Validate() error { return validate.Struct(r) }

type ThemeRequest struct {
	Tone string `json:"tone" validate:"max=64"`
}

func (r *ThemeRequest) Validate() error { return validate.Struct(r) }

type AutoBuildRequest struct {
	Brief string `json:"brief" validate:"required"`
}

func (r *AutoBuildRequest) Validate() error { return validate.Struct(r) }

type VoiceTextRequest struct {
	Text string `json:"text" validate:"required"`
}

func (r *VoiceTextRequest) Validate() error { return validate.Struct(r) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validate.Struct(r) }

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" validate:"required"`
}

func (r *ContactRequest) Validate() error { return validate.Struct(r) }

// ApplyForm is the multipart body of a job application.
type ApplyForm struct {
	Name          string `form:"name"`
	Email         string `form:"email"`
	JobTitle      string `form:"job_title"`
	DesiredSkills string `form:"desired_skills"`
}
