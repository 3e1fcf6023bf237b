package content

import (
	"time"

	"sitebuilder/internal/domain/resume"
)

type Page struct {
	Name      string
	Content   map[string]any
	CreatedAt time.Time
}

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Skills      string    `json:"skills,omitempty"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"`
	SalaryRange string    `json:"salary_range,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Application struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	JobTitle   string               `json:"job_title"`
	ResumePath *string              `json:"resume_path"`
	Parsed     *resume.ParsedResume `json:"parsed"`
	Score      *resume.ScoreResult  `json:"score"`
	CreatedAt  time.Time            `json:"created_at"`
}

type Portfolio struct {
	ID        string              `json:"id"`
	HTML      string              `json:"html"`
	Meta      resume.ParsedResume `json:"meta"`
	CreatedAt time.Time           `json:"created_at"`
}

type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Date      string    `json:"date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Testimonial struct {
	ID        string    `json:"id"`
	Client    string    `json:"client"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type FAQEntry struct {
	Q         string    `json:"q"`
	A         string    `json:"a"`
	CreatedAt time.Time `json:"created_at"`
}

type Theme struct {
	Tone    string         `json:"tone"`
	Palette map[string]any `json:"palette"`
}

type ContactMessage struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}

type Analytics struct {
	Key       string         `json:"key"`
	Value     map[string]any `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}
