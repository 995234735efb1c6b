package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/catatlas/cat-registry/internal/api"
	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/infrastructure/config"
	mongodb "github.com/catatlas/cat-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/catatlas/cat-registry/internal/infrastructure/db/redis"
	"github.com/catatlas/cat-registry/internal/infrastructure/media"
	"github.com/catatlas/cat-registry/pkg/logger"
)

// @title        Cat Registry API
// @version      1.0
// @description  Record management service for users and geotagged cats.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.NewCatRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("cat index bootstrap failed")
	}
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	store, err := media.NewObjectStore(ctx, media.Config{
		Endpoint:  cfg.Media.Endpoint,
		AccessKey: cfg.Media.AccessKey,
		SecretKey: cfg.Media.SecretKey,
		Bucket:    cfg.Media.Bucket,
		UseSSL:    cfg.Media.UseSSL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("media store init failed")
	}
	fallback := domain.Point{Lat: cfg.Media.FallbackLat, Lng: cfg.Media.FallbackLng}
	pipeline := media.NewPipeline(store, fallback, log)

	e := api.NewRouter(db, rdb, pipeline, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	if err := e.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
