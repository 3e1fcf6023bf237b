// Package seeder fills an empty site with the sample company catalogue. Every
// seeder only writes what is missing, so running them repeatedly is safe.
package seeder

import (
	"context"

	"sitebuilder/internal/repository"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, store *repository.Store) error
}
