package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/serhatpolat/maktek-admin/api/routes"
	"github.com/serhatpolat/maktek-admin/internal/audit"
	authsvc "github.com/serhatpolat/maktek-admin/internal/auth"
	"github.com/serhatpolat/maktek-admin/internal/banners"
	"github.com/serhatpolat/maktek-admin/internal/brands"
	"github.com/serhatpolat/maktek-admin/internal/cache"
	"github.com/serhatpolat/maktek-admin/internal/catalogs"
	"github.com/serhatpolat/maktek-admin/internal/categories"
	"github.com/serhatpolat/maktek-admin/internal/groups"
	"github.com/serhatpolat/maktek-admin/internal/products"
	"github.com/serhatpolat/maktek-admin/pkg/catalog"
	"github.com/serhatpolat/maktek-admin/pkg/config"
	"github.com/serhatpolat/maktek-admin/pkg/db"
	"github.com/serhatpolat/maktek-admin/pkg/logger"
	"github.com/serhatpolat/maktek-admin/pkg/metrics"
	"github.com/serhatpolat/maktek-admin/pkg/migrate"
	"github.com/serhatpolat/maktek-admin/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "maktek-admin"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "maktek-admin",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap audit database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing audit database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	upstream := metrics.NewUpstreamMetrics(registry)

	backend, err := catalog.NewClient(cfg.Backend, logg, upstream)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog client", err)
		os.Exit(1)
	}

	store := cache.New(redisClient, cfg.Cache, logg)
	auditService := audit.NewService(audit.NewRepository(dbClient.DB()), logg)

	svcs := routes.Services{
		Auth:       authsvc.NewService(backend, authsvc.NewLoginGuard(redisClient, logg), logg),
		Products:   products.NewService(backend, auditService, store, logg),
		Groups:     groups.NewService(backend, auditService, store, logg),
		Brands:     brands.NewService(backend, auditService, store, logg),
		Categories: categories.NewService(backend, auditService, store, logg),
		Banners:    banners.NewService(backend, auditService, store, logg),
		Catalogs:   catalogs.NewService(backend, auditService, store, logg),
		Audit:      auditService,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": backend.BaseURL(),
	})
	logg.Info(ctx, "starting admin api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, registry, svcs),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "admin api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
