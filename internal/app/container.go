package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sitebuilder/internal/config"
	"sitebuilder/internal/database"
	"sitebuilder/internal/database/migration"
	dbpostgres "sitebuilder/internal/database/postgres"
	"sitebuilder/internal/domain/resume"
	"sitebuilder/internal/infrastructure/cache"
	"sitebuilder/internal/infrastructure/llm"
	"sitebuilder/internal/infrastructure/upload"
	"sitebuilder/internal/pkg/jwt"
	"sitebuilder/internal/repository"
	"sitebuilder/internal/ws"

	"github.com/rs/zerolog"
)

type Container struct {
	Config config.Config
	Logger zerolog.Logger

	// DB is nil with the memory driver.
	DB        database.DB
	Store     *repository.Store
	Cache     *cache.Redis
	Generator llm.Generator
	Storage   upload.Storage
	JWT       *jwt.HMACService
	Parser    *resume.Parser
	Scorer    *resume.Scorer
	Hub       *ws.Hub
	Notifier  *ws.Notifier

	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	store, db, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	c.Store, c.DB = store, db
	if db != nil {
		c.closers = append(c.closers, db.Close)
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger.With().Str("component", "redis").Logger())
	c.closers = append(c.closers, c.Cache.Close)

	var completionCache llm.Cache
	if c.Cache.Available() {
		completionCache = c.Cache
	}
	gen, closeGen, err := llm.New(ctx, cfg.LLM, completionCache, logger.With().Str("component", "llm").Logger())
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Generator = gen
	c.closers = append(c.closers, closeGen)

	storage, err := upload.NewStorage(ctx, cfg.Storage, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Storage = storage

	secret := cfg.JWT.Secret
	if secret == "" {
		logger.Warn().Msg("JWT_SECRET not set, admin tokens will not survive a restart")
		secret = jwt.RandomSecret()
	}
	c.JWT = jwt.NewHMACService(secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	c.Parser, c.Scorer = NewResumeEngine(cfg.Resume)

	c.Hub = ws.NewHub(logger.With().Str("component", "ws").Logger())
	c.Notifier = ws.NewNotifier(c.Hub)

	return c, nil
}

// NewResumeEngine builds the parser and scorer for the configured vocabulary
// and weights. An empty vocabulary selects the built-in list.
func NewResumeEngine(cfg config.ResumeConfig) (*resume.Parser, *resume.Scorer) {
	parser := resume.NewParser(resume.ParseVocabulary(cfg.Skills))
	scorer := resume.NewScorer(resume.Weights{
		Skill:               cfg.SkillWeight,
		Experience:          cfg.ExperienceWeight,
		FullExperienceYears: cfg.FullExperienceYears,
	})
	return parser, scorer
}

// OpenStore returns the configured repositories. The postgres driver also
// returns its pool and applies pending migrations when enabled.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*repository.Store, database.DB, error) {
	if !cfg.UsesPostgres() {
		logger.Info().Msg("using in-memory store")
		return repository.NewMemoryBackedStore(), nil, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.AutoMigrate {
		if err := migration.NewRunner(logger).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	logger.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("postgres store ready")
	return repository.NewPostgresBackedStore(db), db, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
