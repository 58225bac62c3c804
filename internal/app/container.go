package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"worklink/internal/config"
	"worklink/internal/database"
	"worklink/internal/database/migration"
	dbpostgres "worklink/internal/database/postgres"
	"worklink/internal/infrastructure/cache"
)

// Container holds the process-lifetime infrastructure: the connection
// pool and the cache client. Both are constructed once at startup and
// injected downward; nothing below this layer opens its own connections.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.RunMigrations {
		runner := migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: logger}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
