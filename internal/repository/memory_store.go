package repository

import (
	"context"
	"maps"
	"sync"
	"time"

	"sitebuilder/internal/domain/content"
)

// MemoryStore keeps every collection in process memory. Contents are lost on
// restart.
type MemoryStore struct {
	mu sync.RWMutex

	pages        map[string]content.Page
	pageOrder    []string
	jobs         []content.Job
	applications []content.Application
	portfolios   map[string]content.Portfolio
	posts        []content.BlogPost
	testimonials []content.Testimonial
	faq          []content.FAQEntry
	themes       map[string]content.Theme
	themeOrder   []string
	messages     []content.ContactMessage
	analytics    map[string]content.Analytics

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pages:      map[string]content.Page{},
		portfolios: map[string]content.Portfolio{},
		themes:     map[string]content.Theme{},
		analytics:  map[string]content.Analytics{},
		now:        time.Now,
	}
}

func NewMemoryBackedStore() *Store {
	m := NewMemoryStore()
	return &Store{
		Pages:        m,
		Jobs:         m,
		Applications: m,
		Portfolios:   m,
		Posts:        m,
		Testimonials: m,
		FAQ:          m,
		Themes:       m,
		Messages:     m,
		Analytics:    m,
	}
}

func (m *MemoryStore) GetPage(_ context.Context, name string) (content.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pages[name]
	if !ok {
		return content.Page{}, ErrNotFound
	}
	p.Content = maps.Clone(p.Content)
	return p, nil
}

func (m *MemoryStore) PutPage(_ context.Context, page content.Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, exists := m.pages[page.Name]
	if !exists {
		m.pageOrder = append(m.pageOrder, page.Name)
		if page.CreatedAt.IsZero() {
			page.CreatedAt = m.now().UTC()
		}
	} else {
		page.CreatedAt = prev.CreatedAt
	}
	page.Content = maps.Clone(page.Content)
	m.pages[page.Name] = page
	return nil
}

func (m *MemoryStore) ListPages(_ context.Context) ([]content.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]content.Page, 0, len(m.pageOrder))
	for _, name := range m.pageOrder {
		p := m.pages[name]
		p.Content = maps.Clone(p.Content)
		out = append(out, p)
	}
	return out, nil
}

func (m *MemoryStore) CreateJob(_ context.Context, job content.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, prev := range m.jobs {
		if prev.ID == job.ID {
			job.CreatedAt = prev.CreatedAt
			m.jobs[i] = job
			return nil
		}
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = m.now().UTC()
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func (m *MemoryStore) ListJobs(_ context.Context) ([]content.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]content.Job{}, m.jobs...), nil
}

func (m *MemoryStore) CreateApplication(_ context.Context, app content.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if app.CreatedAt.IsZero() {
		app.CreatedAt = m.now().UTC()
	}
	m.applications = append(m.applications, app)
	return nil
}

func (m *MemoryStore) ListApplications(_ context.Context) ([]content.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]content.Application{}, m.applications...), nil
}

func (m *MemoryStore) CreatePortfolio(_ context.Context, p content.Portfolio) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = m.now().UTC()
	}
	m.portfolios[p.ID] = p
	return nil
}

func (m *MemoryStore) GetPortfolio(_ context.Context, id string) (content.Portfolio, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.portfolios[id]
	if !ok {
		return content.Portfolio{}, ErrNotFound
	}
	return p, nil
}

func (m *MemoryStore) CountPortfolios(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.portfolios), nil
}

func (m *MemoryStore) CreatePost(_ context.Context, post content.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = m.now().UTC()
	}
	m.posts = append(m.posts, post)
	return nil
}

func (m *MemoryStore) GetPost(_ context.Context, id string) (content.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return content.BlogPost{}, ErrNotFound
}

func (m *MemoryStore) ListPosts(_ context.Context) ([]content.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]content.BlogPost{}, m.posts...), nil
}

func (m *MemoryStore) CreateTestimonial(_ context.Context, t content.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = m.now().UTC()
	}
	m.testimonials = append(m.testimonials, t)
	return nil
}

func (m *MemoryStore) ListTestimonials(_ context.Context) ([]content.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]content.Testimonial{}, m.testimonials...), nil
}

func (m *MemoryStore) AppendFAQ(_ context.Context, e content.FAQEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = m.now().UTC()
	}
	m.faq = append(m.faq, e)
	return nil
}

func (m *MemoryStore) ListFAQ(_ context.Context) ([]content.FAQEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]content.FAQEntry{}, m.faq...), nil
}

func (m *MemoryStore) RecentFAQ(_ context.Context, limit int) ([]content.FAQEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 {
		return []content.FAQEntry{}, nil
	}
	start := max(0, len(m.faq)-limit)
	return append([]content.FAQEntry{}, m.faq[start:]...), nil
}

func (m *MemoryStore) PutTheme(_ context.Context, t content.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.themes[t.Tone]; !ok {
		m.themeOrder = append(m.themeOrder, t.Tone)
	}
	t.Palette = maps.Clone(t.Palette)
	m.themes[t.Tone] = t
	return nil
}

func (m *MemoryStore) GetTheme(_ context.Context, tone string) (content.Theme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.themes[tone]
	if !ok {
		return content.Theme{}, ErrNotFound
	}
	t.Palette = maps.Clone(t.Palette)
	return t, nil
}

func (m *MemoryStore) ListThemes(_ context.Context) ([]content.Theme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]content.Theme, 0, len(m.themeOrder))
	for _, tone := range m.themeOrder {
		t := m.themes[tone]
		t.Palette = maps.Clone(t.Palette)
		out = append(out, t)
	}
	return out, nil
}

func (m *MemoryStore) CreateMessage(_ context.Context, msg content.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if msg.Created.IsZero() {
		msg.Created = m.now().UTC()
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *MemoryStore) ListMessages(_ context.Context) ([]content.ContactMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]content.ContactMessage{}, m.messages...), nil
}

func (m *MemoryStore) PutAnalytics(_ context.Context, a content.Analytics) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.UpdatedAt = m.now().UTC()
	a.Value = maps.Clone(a.Value)
	m.analytics[a.Key] = a
	return nil
}

func (m *MemoryStore) GetAnalytics(_ context.Context, key string) (content.Analytics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.analytics[key]
	if !ok {
		return content.Analytics{}, ErrNotFound
	}
	a.Value = maps.Clone(a.Value)
	return a, nil
}
