package config

import (
	"context"
	"fmt"
	"time"

	"github.com/porter-dev/ams-assistant/internal/adapter"
	"github.com/porter-dev/ams-assistant/internal/envconf"
	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/internal/repository"
	"github.com/porter-dev/ams-assistant/internal/repository/memory"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"github.com/porter-dev/ams-assistant/pkg/dashboard"
	"github.com/porter-dev/ams-assistant/pkg/healthcheck"
	"github.com/porter-dev/ams-assistant/pkg/session"
	"github.com/porter-dev/ams-assistant/pkg/textgen"
	"github.com/porter-dev/ams-assistant/pkg/textgen/gemini"
	"github.com/porter-dev/ams-assistant/pkg/textgen/genaisdk"
	"github.com/porter-dev/ams-assistant/pkg/ticket"
)

type Config struct {
	// Logger for logging
	Logger *logger.Logger

	Repository *repository.Repository

	Recommender *ticket.Recommender

	HealthChecker *healthcheck.Checker

	Sessions *session.Store

	Dashboard *dashboard.Renderer
}

// NewRepository returns the repository selected by conf.StoreKind. SQL stores
// are migrated and seeded on first use.
func NewRepository(ctx context.Context, conf *envconf.DBConf, l *logger.Logger) (*repository.Repository, error) {
	if conf.StoreKind == "" || conf.StoreKind == envconf.StoreKindMemory {
		return memory.NewRepository(seed.Default()), nil
	}

	db, err := adapter.New(conf)

	if err != nil {
		return nil, fmt.Errorf("could not create database connection: %w", err)
	}

	if err := repository.AutoMigrate(db, false); err != nil {
		return nil, fmt.Errorf("auto migration failed: %w", err)
	}

	if err := repository.SeedIfEmpty(ctx, db, seed.Default()); err != nil {
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	l.Info().Caller().Msgf("using %s store", conf.StoreKind)

	return repository.NewRepository(db), nil
}

// NewGenerator returns the text generator selected by conf.GeneratorKind.
func NewGenerator(ctx context.Context, conf *envconf.GeneratorConf, l *logger.Logger) (textgen.Generator, error) {
	switch conf.GeneratorKind {
	case "", envconf.GeneratorKindGemini:
		return gemini.NewClient(&gemini.Config{
			BaseURL: conf.GeneratorBaseURL,
			Model:   conf.GeneratorModel,
			APIKey:  conf.GeneratorAPIKey,
			Timeout: conf.RecommendationTimeout,
		}, l), nil
	case envconf.GeneratorKindGenAI:
		client, err := genaisdk.NewClient(ctx, &genaisdk.Config{
			BaseURL: conf.GeneratorBaseURL,
			Model:   conf.GeneratorModel,
			APIKey:  conf.GeneratorAPIKey,
		}, l)

		if err != nil {
			return nil, err
		}

		return client, nil
	}

	return nil, fmt.Errorf("unknown generator kind %q", conf.GeneratorKind)
}

func GetConfig(
	envConf *envconf.EnvDecoderConf,
	repo *repository.Repository,
	generator textgen.Generator,
	l *logger.Logger,
) (*Config, error) {
	renderer, err := dashboard.NewRenderer(dashboard.RendererOptions{})

	if err != nil {
		return nil, err
	}

	hcConf := envConf.HealthCheckConf

	probability := hcConf.HealthCheckProbability

	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("health check probability must be within [0, 1], got %v", probability)
	}

	res := &Config{
		Logger:     l,
		Repository: repo,
		Recommender: ticket.NewRecommender(repo.Ticket, repo.PastIncident, generator, ticket.RecommenderOptions{
			Timeout: envConf.GeneratorConf.RecommendationTimeout,
			Logger:  l,
		}),
		HealthChecker: healthcheck.NewChecker(repo.Instance, healthcheck.CheckerOptions{
			Rules:  healthcheck.DefaultRules(healthcheck.NewRandSource(hcConf.HealthCheckSeed), probability),
			Delay:  hcConf.HealthCheckDelay,
			Now:    func() time.Time { return time.Now().UTC() },
			Logger: l,
		}),
		Sessions: session.NewStore(session.StoreOptions{
			TTL: envConf.SessionConf.SessionTTL,
			Now: func() time.Time { return time.Now().UTC() },
		}),
		Dashboard: renderer,
	}

	return res, nil
}
