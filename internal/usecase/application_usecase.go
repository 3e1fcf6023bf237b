package usecase

import (
	"context"
	"strings"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/domain/resume"
	"sitebuilder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const EventApplicationReceived = "application_received"

type ApplyInput struct {
	Name          string
	Email         string
	JobTitle      string
	DesiredSkills string
	Resume        *UploadedFile
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, in ApplyInput) (content.Application, error)
	List(ctx context.Context) ([]content.Application, error)
}

type Applications struct {
	repo   repository.ApplicationRepository
	resume *Resume
	events EventPublisher
	logger zerolog.Logger
}

func NewApplicationUsecase(repo repository.ApplicationRepository, resumeUC *Resume, events EventPublisher, logger zerolog.Logger) *Applications {
	return &Applications{repo: repo, resume: resumeUC, events: publisherOrNoop(events), logger: logger}
}

// Apply records an application. An attached resume is stored, parsed and
// scored; without one the score reflects an empty resume.
func (u *Applications) Apply(ctx context.Context, in ApplyInput) (content.Application, error) {
	app := content.Application{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		JobTitle: strings.TrimSpace(in.JobTitle),
	}

	if in.Resume != nil {
		analysis, err := u.resume.Analyze(ctx, in.Resume, in.DesiredSkills)
		if err != nil {
			return content.Application{}, err
		}
		if analysis.Path != "" {
			p := analysis.Path
			app.ResumePath = &p
		}
		app.Parsed = &analysis.Parsed
		app.Score = &analysis.Score
	} else {
		score := u.resume.score(resume.ParsedResume{}, in.DesiredSkills)
		app.Score = &score
	}

	if err := u.repo.CreateApplication(ctx, app); err != nil {
		u.logger.Error().Err(err).Msg("create application failed")
		return content.Application{}, ErrInternal
	}

	u.events.Publish(EventApplicationReceived, app)
	return app, nil
}

func (u *Applications) List(ctx context.Context) ([]content.Application, error) {
	apps, err := u.repo.ListApplications(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list applications failed")
		return nil, ErrInternal
	}
	return apps, nil
}
