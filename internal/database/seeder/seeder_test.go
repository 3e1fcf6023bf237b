package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"sitebuilder/internal/domain/content"
	"sitebuilder/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

func TestDefaults_SeedsEmptyStore(t *testing.T) {
	store := repository.NewMemoryBackedStore()
	ctx := context.Background()

	require.NoError(t, Defaults(fixedNow).Run(ctx, store))

	pages, err := store.Pages.ListPages(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"home", "about", "services", "projects"}, names)

	jobs, _ := store.Jobs.ListJobs(ctx)
	assert.Len(t, jobs, 3)
	apps, _ := store.Applications.ListApplications(ctx)
	assert.Len(t, apps, 2)
	posts, _ := store.Posts.ListPosts(ctx)
	assert.Len(t, posts, 3)
	faq, _ := store.FAQ.ListFAQ(ctx)
	assert.Len(t, faq, 2)
	n, _ := store.Portfolios.CountPortfolios(ctx)
	assert.Equal(t, 1, n)

	metrics, err := store.Analytics.GetAnalytics(ctx, MetricsKey)
	require.NoError(t, err)
	assert.Equal(t, 1240, metrics.Value["visitors"])
	assert.Equal(t, 2, metrics.Value["applications"])

	meta, err := store.Analytics.GetAnalytics(ctx, MetaKey)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02T03:04:05Z", meta.Value["seeded_at"])
}

func TestDefaults_IsIdempotentAndKeepsExistingContent(t *testing.T) {
	store := repository.NewMemoryBackedStore()
	ctx := context.Background()

	custom := map[string]any{"title": "Custom Co"}
	require.NoError(t, store.Pages.PutPage(ctx, content.Page{Name: "home", Content: custom}))
	require.NoError(t, store.Applications.CreateApplication(ctx, content.Application{ID: "mine", Name: "Me"}))

	require.NoError(t, Defaults(fixedNow).Run(ctx, store))
	require.NoError(t, Defaults(fixedNow).Run(ctx, store))

	home, err := store.Pages.GetPage(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, custom, home.Content)

	apps, _ := store.Applications.ListApplications(ctx)
	require.Len(t, apps, 1)
	assert.Equal(t, "mine", apps[0].ID)

	jobs, _ := store.Jobs.ListJobs(ctx)
	assert.Len(t, jobs, 3)

	metrics, _ := store.Analytics.GetAnalytics(ctx, MetricsKey)
	assert.Equal(t, 1, metrics.Value["applications"])
}

func TestDefaults_EmptyPageIsReplaced(t *testing.T) {
	store := repository.NewMemoryBackedStore()
	ctx := context.Background()
	require.NoError(t, store.Pages.PutPage(ctx, content.Page{Name: "about", Content: map[string]any{}}))

	require.NoError(t, PagesSeeder{}.Run(ctx, store))

	about, err := store.Pages.GetPage(ctx, "about")
	require.NoError(t, err)
	assert.Contains(t, about.Content, "mission")
}

type failingSeeder struct{}

func (failingSeeder) Name() string { return "broken" }

func (failingSeeder) Run(context.Context, *repository.Store) error { return errors.New("boom") }

func TestRunner_WrapsSeederName(t *testing.T) {
	err := Runner{Seeders: []Seeder{nil, failingSeeder{}}}.Run(context.Background(), repository.NewMemoryBackedStore())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed broken: boom")

	require.Error(t, Runner{}.Run(context.Background(), nil))
}
