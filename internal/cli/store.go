package cli

import (
	"context"
	"fmt"

	"wordregistry/internal/config"
	"wordregistry/internal/repository"
	"wordregistry/internal/repository/memory"
	mongorepo "wordregistry/internal/repository/mongo"
	"wordregistry/internal/repository/postgres"

	"go.uber.org/zap"
)

// openStore connects the backing store named in cfg. Postgres schemas are
// migrated before the repository is returned.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.WordRepository, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.DefaultConnectOptions, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		if err := postgres.MigrateUp(db, logger); err != nil {
			db.Close()
			return nil, err
		}
		return postgres.NewWordRepo(db), nil

	case config.StoreMongo:
		repo, err := mongorepo.Connect(ctx, cfg.MongoURI, logger)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.StoreMemory:
		logger.Warn("Using in-memory store, words are lost on restart")
		return memory.NewWordRepo(), nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
