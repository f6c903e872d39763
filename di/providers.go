package di

import (
	"context"
	"hoteladmin/config"
	"hoteladmin/infras/database"
	"hoteladmin/infras/otel"
	"hoteladmin/infras/redis"
	"hoteladmin/internal/schema"
	"hoteladmin/shared/cache"

	"github.com/rs/zerolog/log"
)

// provideDatabase connects with bounded retry and closes the handle on
// cleanup.
func provideDatabase(cfg *config.Config) (*database.Connection, func(), error) {
	conn, err := database.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return conn, func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connection")
		}
	}, nil
}

// provideSchema creates any missing table before a repository is built on
// the connection.
func provideSchema(conn *database.Connection, otl otel.Otel) (*schema.Manager, error) {
	manager := schema.New(conn, otl)

	if err := manager.Initialize(context.Background()); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return manager, nil
}

// provideCache returns the Redis cache when CACHE_ENABLE is set and a cache
// that always misses otherwise.
func provideCache(cfg *config.Config, otl otel.Otel) (cache.Cache, func(), error) {
	if !cfg.Cache.Enable {
		log.Info().Msg("Cache disabled, using no-op cache")

		return cache.NewNoopCache(), func() {}, nil
	}

	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return cache.NewRedisCache(client, otl), func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}, nil
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	otl := otel.New(cfg)

	return otl, func() {
		if err := otl.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to shutdown tracer provider")
		}
	}
}
