package repository

import (
	"context"
	"errors"

	"sitebuilder/internal/domain/content"
)

var ErrNotFound = errors.New("record not found")

type PageRepository interface {
	GetPage(ctx context.Context, name string) (content.Page, error)
	PutPage(ctx context.Context, page content.Page) error
	ListPages(ctx context.Context) ([]content.Page, error)
}

type JobRepository interface {
	// CreateJob replaces a job with the same id in place, keeping its
	// position and creation time.
	CreateJob(ctx context.Context, job content.Job) error
	ListJobs(ctx context.Context) ([]content.Job, error)
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app content.Application) error
	ListApplications(ctx context.Context) ([]content.Application, error)
}

type PortfolioRepository interface {
	CreatePortfolio(ctx context.Context, p content.Portfolio) error
	GetPortfolio(ctx context.Context, id string) (content.Portfolio, error)
	CountPortfolios(ctx context.Context) (int, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, post content.BlogPost) error
	GetPost(ctx context.Context, id string) (content.BlogPost, error)
	ListPosts(ctx context.Context) ([]content.BlogPost, error)
}

type TestimonialRepository interface {
	CreateTestimonial(ctx context.Context, t content.Testimonial) error
	ListTestimonials(ctx context.Context) ([]content.Testimonial, error)
}

type FAQRepository interface {
	AppendFAQ(ctx context.Context, e content.FAQEntry) error
	ListFAQ(ctx context.Context) ([]content.FAQEntry, error)
	// RecentFAQ returns up to limit newest entries, oldest first.
	RecentFAQ(ctx context.Context, limit int) ([]content.FAQEntry, error)
}

type ThemeRepository interface {
	PutTheme(ctx context.Context, t content.Theme) error
	GetTheme(ctx context.Context, tone string) (content.Theme, error)
	ListThemes(ctx context.Context) ([]content.Theme, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, m content.ContactMessage) error
	ListMessages(ctx context.Context) ([]content.ContactMessage, error)
}

type AnalyticsRepository interface {
	PutAnalytics(ctx context.Context, a content.Analytics) error
	GetAnalytics(ctx context.Context, key string) (content.Analytics, error)
}

// Store groups the repositories handed to usecases.
type Store struct {
	Pages        PageRepository
	Jobs         JobRepository
	Applications ApplicationRepository
	Portfolios   PortfolioRepository
	Posts        PostRepository
	Testimonials TestimonialRepository
	FAQ          FAQRepository
	Themes       ThemeRepository
	Messages     MessageRepository
	Analytics    AnalyticsRepository

	ping func(ctx context.Context) error
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}
