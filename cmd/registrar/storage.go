package main

import (
	"context"
	"fmt"

	"github.com/artem13815/registration/pkg/config"
	"github.com/artem13815/registration/pkg/health"
	healthpg "github.com/artem13815/registration/pkg/health/checkers"
	"github.com/artem13815/registration/pkg/registration"
	pgrepo "github.com/artem13815/registration/pkg/repository/postgres"
	"github.com/artem13815/registration/pkg/storage/memory"
	"github.com/artem13815/registration/pkg/storage/postgres"
)

// openStorage builds the storage selected by cfg together with its readiness
// checkers. The returned close func is always safe to call.
func openStorage(ctx context.Context, cfg config.Config) (registration.Storage, []health.Checker, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.New(), nil, func() {}, nil
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			return nil, nil, func() {}, err
		}
		repo, err := pgrepo.NewUserRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, func() {}, fmt.Errorf("init user repo: %w", err)
		}
		return repo, []health.Checker{healthpg.NewPostgresChecker(pool, cfg.ReadyTimeout)}, pool.Close, nil
	default:
		return nil, nil, func() {}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
