package seeder

import (
	"context"
	"fmt"
	"time"

	"sitebuilder/internal/repository"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, store *repository.Store) error {
	if store == nil {
		return fmt.Errorf("nil store")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, store); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

// Defaults is the full catalogue in dependency order. Metrics run after
// applications so their count is current.
func Defaults(now func() time.Time) Runner {
	if now == nil {
		now = time.Now
	}
	return Runner{Seeders: []Seeder{
		PagesSeeder{},
		TestimonialsSeeder{},
		PostsSeeder{},
		JobsSeeder{},
		ApplicationsSeeder{},
		FAQSeeder{},
		ThemesSeeder{},
		PortfoliosSeeder{},
		MetricsSeeder{Now: now},
	}}
}
