package usecase

import (
	"context"
	"time"

	"sitebuilder/internal/database/seeder"
	"sitebuilder/internal/repository"

	"github.com/rs/zerolog"
)

const (
	seedLockKey = "sitebuilder:seed:lock"
	seedLockTTL = 30 * time.Second
)

// SeedLocker guards concurrent seeding across instances.
type SeedLocker interface {
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type SeedSummary struct {
	Pages        []string `json:"pages"`
	Jobs         int      `json:"jobs"`
	Applications int      `json:"applications"`
	BlogPosts    int      `json:"blog_posts"`
}

type SeedUsecase interface {
	EnsureSeed(ctx context.Context) (SeedSummary, error)
}

type Seed struct {
	store  *repository.Store
	runner seeder.Runner
	lock   SeedLocker
	logger zerolog.Logger
}

func NewSeedUsecase(store *repository.Store, lock SeedLocker, logger zerolog.Logger) *Seed {
	return &Seed{store: store, runner: seeder.Defaults(time.Now), lock: lock, logger: logger}
}

// EnsureSeed fills whatever demo content is missing and reports the counts.
// When another instance holds the lock the seed step is skipped.
func (u *Seed) EnsureSeed(ctx context.Context) (SeedSummary, error) {
	acquired := true
	if u.lock != nil {
		ok, err := u.lock.SetIfNotExists(ctx, seedLockKey, "1", seedLockTTL)
		if err != nil {
			u.logger.Warn().Err(err).Msg("seed lock unavailable")
		}
		acquired = ok || err != nil
	}

	if acquired {
		if u.lock != nil {
			defer func() {
				if err := u.lock.Delete(context.WithoutCancel(ctx), seedLockKey); err != nil {
					u.logger.Warn().Err(err).Msg("release seed lock failed")
				}
			}()
		}
		if err := u.runner.Run(ctx, u.store); err != nil {
			u.logger.Error().Err(err).Msg("seed failed")
			return SeedSummary{}, ErrInternal
		}
		u.logger.Info().Msg("seed ensured")
	} else {
		u.logger.Info().Msg("seed already running elsewhere")
	}

	return u.summary(ctx)
}

func (u *Seed) summary(ctx context.Context) (SeedSummary, error) {
	pages, err := u.store.Pages.ListPages(ctx)
	if err != nil {
		return SeedSummary{}, u.internal(err)
	}
	jobs, err := u.store.Jobs.ListJobs(ctx)
	if err != nil {
		return SeedSummary{}, u.internal(err)
	}
	apps, err := u.store.Applications.ListApplications(ctx)
	if err != nil {
		return SeedSummary{}, u.internal(err)
	}
	posts, err := u.store.Posts.ListPosts(ctx)
	if err != nil {
		return SeedSummary{}, u.internal(err)
	}

	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.Name)
	}
	return SeedSummary{Pages: names, Jobs: len(jobs), Applications: len(apps), BlogPosts: len(posts)}, nil
}

func (u *Seed) internal(err error) error {
	u.logger.Error().Err(err).Msg("seed summary failed")
	return ErrInternal
}
