package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const EventContactReceived = "contact_received"

type NewJobInput struct {
	ID          string
	Title       string
	Skills      string
	Description string
	Location    string
	Type        string
	SalaryRange string
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContentUsecase interface {
	GetPage(ctx context.Context, name string) (map[string]any, error)
	UpsertPage(ctx context.Context, name string, data map[string]any) (map[string]any, error)
	ListJobs(ctx context.Context) ([]content.Job, error)
	AddJob(ctx context.Context, in NewJobInput) (content.Job, error)
	ListPosts(ctx context.Context) ([]content.BlogPost, error)
	GetPost(ctx context.Context, id string) (content.BlogPost, error)
	SubmitContact(ctx context.Context, in ContactInput) (string, error)
	ListMessages(ctx context.Context) ([]content.ContactMessage, error)
}

type Content struct {
	store  *repository.Store
	events EventPublisher
	logger zerolog.Logger
	now    func() time.Time
}

func NewContentUsecase(store *repository.Store, events EventPublisher, logger zerolog.Logger) *Content {
	return &Content{store: store, events: publisherOrNoop(events), logger: logger, now: time.Now}
}

// GetPage returns the page content. A page stored with no content is
// reported as missing.
func (u *Content) GetPage(ctx context.Context, name string) (map[string]any, error) {
	page, err := u.store.Pages.GetPage(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		u.logger.Error().Err(err).Str("page", name).Msg("get page failed")
		return nil, ErrInternal
	}
	if len(page.Content) == 0 {
		return nil, ErrNotFound
	}
	return page.Content, nil
}

func (u *Content) UpsertPage(ctx context.Context, name string, data map[string]any) (map[string]any, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if data == nil {
		data = map[string]any{}
	}

	if err := u.store.Pages.PutPage(ctx, content.Page{Name: name, Content: data}); err != nil {
		u.logger.Error().Err(err).Str("page", name).Msg("put page failed")
		return nil, ErrInternal
	}

	answer, _ := json.Marshal(data)
	u.appendFAQ(ctx, fmt.Sprintf("What is on the %s page?", name), string(answer))
	return data, nil
}

func (u *Content) ListJobs(ctx context.Context) ([]content.Job, error) {
	jobs, err := u.store.Jobs.ListJobs(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list jobs failed")
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Content) AddJob(ctx context.Context, in NewJobInput) (content.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return content.Job{}, ErrInvalidInput
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	job := content.Job{
		ID:          id,
		Title:       title,
		Skills:      in.Skills,
		Description: in.Description,
		Location:    in.Location,
		Type:        in.Type,
		SalaryRange: in.SalaryRange,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.store.Jobs.CreateJob(ctx, job); err != nil {
		u.logger.Error().Err(err).Str("job_id", id).Msg("create job failed")
		return content.Job{}, ErrInternal
	}
	return job, nil
}

func (u *Content) ListPosts(ctx context.Context) ([]content.BlogPost, error) {
	posts, err := u.store.Posts.ListPosts(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list posts failed")
		return nil, ErrInternal
	}
	return posts, nil
}

func (u *Content) GetPost(ctx context.Context, id string) (content.BlogPost, error) {
	post, err := u.store.Posts.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return content.BlogPost{}, ErrNotFound
		}
		u.logger.Error().Err(err).Str("post_id", id).Msg("get post failed")
		return content.BlogPost{}, ErrInternal
	}
	return post, nil
}

// SubmitContact stores the message, records it in the FAQ log and notifies
// live admin sessions. It returns the new message id.
func (u *Content) SubmitContact(ctx context.Context, in ContactInput) (string, error) {
	if strings.TrimSpace(in.Message) == "" {
		return "", ErrInvalidInput
	}

	msg := content.ContactMessage{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: in.Message,
		Created: u.now().UTC(),
	}
	if err := u.store.Messages.CreateMessage(ctx, msg); err != nil {
		u.logger.Error().Err(err).Msg("create message failed")
		return "", ErrInternal
	}

	from := msg.Name
	if from == "" {
		from = msg.Email
	}
	if from == "" {
		from = "anonymous"
	}
	u.appendFAQ(ctx, "Contact from "+from, msg.Message)

	u.events.Publish(EventContactReceived, msg)
	return msg.ID, nil
}

func (u *Content) ListMessages(ctx context.Context) ([]content.ContactMessage, error) {
	msgs, err := u.store.Messages.ListMessages(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("list messages failed")
		return nil, ErrInternal
	}
	return msgs, nil
}

// appendFAQ is best effort; the primary write already succeeded.
func (u *Content) appendFAQ(ctx context.Context, q, a string) {
	if err := u.store.FAQ.AppendFAQ(ctx, content.FAQEntry{Q: q, A: a, CreatedAt: u.now().UTC()}); err != nil {
		u.logger.Warn().Err(err).Str("q", q).Msg("append faq failed")
	}
}
