// Package bootstrap turns a config path into a ready member service for the
// command line.
package bootstrap

import (
	"context"
	"fmt"

	memberApp "github.com/orris-inc/gymdesk/internal/application/member"
	"github.com/orris-inc/gymdesk/internal/application/member/usecases"
	"github.com/orris-inc/gymdesk/internal/infrastructure/config"
	"github.com/orris-inc/gymdesk/internal/infrastructure/persistence/flatfile"
	"github.com/orris-inc/gymdesk/internal/shared/biztime"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
)

type App struct {
	Config  *config.Config
	Logger  logger.Interface
	Store   *flatfile.Store
	Members *memberApp.Service
	// LoadResult describes the load performed by Open.
	LoadResult *usecases.LoadMembersResult
}

// Init loads configuration and sets up logging and the business timezone.
func Init(configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.App.Debug); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.App.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Open runs Init and loads the member store.
func Open(ctx context.Context, configPath string) (*App, error) {
	cfg, log, err := Init(configPath)
	if err != nil {
		return nil, err
	}

	store := flatfile.NewStore(cfg.Store, log.Named("flatfile"))
	members := memberApp.NewService(store, log.Named("member"))

	result, err := members.Open(ctx)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:     cfg,
		Logger:     log,
		Store:      store,
		Members:    members,
		LoadResult: result,
	}, nil
}
