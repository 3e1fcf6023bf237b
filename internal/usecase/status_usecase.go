package usecase

import (
	"context"
	"time"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	Status string `json:"status"`
	Store  string `json:"store"`
	Cache  string `json:"cache"`
}

type StatusUsecase interface {
	GeneratorEnabled() bool
	Health(ctx context.Context) Health
}

type Status struct {
	store     Pinger
	cache     Pinger
	generator interface{ Enabled() bool }
}

// NewStatusUsecase reports on the store and the optional cache. A nil cache
// is reported as disabled.
func NewStatusUsecase(store Pinger, cache Pinger, generator interface{ Enabled() bool }) *Status {
	return &Status{store: store, cache: cache, generator: generator}
}

func (u *Status) GeneratorEnabled() bool {
	return u.generator != nil && u.generator.Enabled()
}

// Health stays "ok" while the store answers. Cache failures only degrade the
// cache field.
func (u *Status) Health(ctx context.Context) Health {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	h := Health{Status: "ok", Store: "up", Cache: "disabled"}
	if err := u.store.Ping(ctx); err != nil {
		h.Status = "degraded"
		h.Store = "down"
	}
	if u.cache != nil {
		h.Cache = "up"
		if err := u.cache.Ping(ctx); err != nil {
			h.Cache = "down"
		}
	}
	return h
}
