package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/domain/resume"
	"sitebuilder/internal/infrastructure/llm"
	"sitebuilder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const previewRunes = 800

type GeneratedPortfolio struct {
	ID      string `json:"portfolio_id"`
	Preview string `json:"preview_html"`
}

type PortfolioUsecase interface {
	Generate(ctx context.Context, file *UploadedFile) (GeneratedPortfolio, error)
	Get(ctx context.Context, id string) (content.Portfolio, error)
}

type Portfolios struct {
	repo   repository.PortfolioRepository
	resume *Resume
	gen    llm.Generator
	logger zerolog.Logger
}

func NewPortfolioUsecase(repo repository.PortfolioRepository, resumeUC *Resume, gen llm.Generator, logger zerolog.Logger) *Portfolios {
	return &Portfolios{repo: repo, resume: resumeUC, gen: gen, logger: logger}
}

// Generate builds a portfolio page from a resume. Model output lacking an
// <html> element is replaced by the template.
func (u *Portfolios) Generate(ctx context.Context, file *UploadedFile) (GeneratedPortfolio, error) {
	if file == nil {
		return GeneratedPortfolio{}, ErrMissingFile
	}
	if _, err := u.resume.store(ctx, file); err != nil {
		return GeneratedPortfolio{}, err
	}
	parsed := u.resume.parse(file)

	var page string
	if u.gen.Enabled() {
		meta, _ := json.Marshal(parsed)
		prompt := "Create a simple, clean HTML portfolio page for this candidate with name, email, skills, experience and a short intro: " + string(meta)
		page = complete(ctx, u.gen, u.logger, prompt, llm.Options{MaxTokens: 600})
		if !strings.Contains(strings.ToLower(page), "<html") {
			page = portfolioHTML(parsed, false)
		}
	} else {
		page = portfolioHTML(parsed, true)
	}

	p := content.Portfolio{ID: uuid.NewString(), HTML: page, Meta: parsed}
	if err := u.repo.CreatePortfolio(ctx, p); err != nil {
		u.logger.Error().Err(err).Msg("create portfolio failed")
		return GeneratedPortfolio{}, ErrInternal
	}

	return GeneratedPortfolio{ID: p.ID, Preview: truncateRunes(page, previewRunes)}, nil
}

func (u *Portfolios) Get(ctx context.Context, id string) (content.Portfolio, error) {
	p, err := u.repo.GetPortfolio(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return content.Portfolio{}, ErrNotFound
		}
		u.logger.Error().Err(err).Str("id", id).Msg("get portfolio failed")
		return content.Portfolio{}, ErrInternal
	}
	return p, nil
}

func portfolioHTML(p resume.ParsedResume, withEmail bool) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(p.Name))
	if withEmail {
		email := ""
		if p.Email != nil {
			email = *p.Email
		}
		fmt.Fprintf(&b, "<p>Email: %s</p>", html.EscapeString(email))
	}
	fmt.Fprintf(&b, "<p>Skills: %s</p>", html.EscapeString(strings.Join(p.Skills, ", ")))
	fmt.Fprintf(&b, "<p>Experience: %d years</p>", p.ExperienceYears)
	b.WriteString("</body></html>")
	return b.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
