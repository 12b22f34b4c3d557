package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tennis-cup/config"
	"github.com/Dosada05/tennis-cup/db"
	"github.com/Dosada05/tennis-cup/repositories"
	"github.com/Dosada05/tennis-cup/storage"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = db.DefaultTimeout

// openStore connects the configured backend. The returned teardown closes
// whatever connection was opened.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.TournamentRepository, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		logger.Warn("using the in-memory store, state is lost on restart")
		return repositories.NewMemoryTournamentRepository(), noop, nil

	case config.StorePostgres:
		conn, err := db.Connect(cfg.DatabaseURL, connectTimeout)
		if err != nil {
			return nil, noop, err
		}
		if err := db.Migrate(conn, db.DialectPostgres); err != nil {
			conn.Close()
			return nil, noop, err
		}
		return repositories.NewPostgresTournamentRepository(conn), closer(logger, "postgres", conn.Close), nil

	case config.StoreSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath, cfg.TursoURL, cfg.TursoToken, connectTimeout)
		if err != nil {
			return nil, noop, err
		}
		if err := db.Migrate(conn, db.DialectSQLite); err != nil {
			conn.Close()
			return nil, noop, err
		}
		return repositories.NewSQLiteTournamentRepository(conn), closer(logger, "sqlite", conn.Close), nil

	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("failed to ping redis: %w", err)
		}
		return repositories.NewRedisTournamentRepository(client), closer(logger, "redis", client.Close), nil

	case config.StoreMongo:
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, noop, fmt.Errorf("failed to ping mongo: %w", err)
		}
		disconnect := func() error { return client.Disconnect(context.Background()) }
		return repositories.NewMongoTournamentRepository(client.Database(cfg.MongoDB)), closer(logger, "mongo", disconnect), nil

	case config.StoreR2:
		objects, err := storage.NewCloudflareR2Store(ctx, storage.CloudflareR2Config{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
		})
		if err != nil {
			return nil, noop, err
		}
		return storage.NewTournamentDocumentStore(objects), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

func closer(logger *slog.Logger, name string, closeFn func() error) func() {
	return func() {
		if err := closeFn(); err != nil {
			logger.Error("failed to close store connection", slog.String("store", name), slog.Any("error", err))
			return
		}
		logger.Info("store connection closed", slog.String("store", name))
	}
}
