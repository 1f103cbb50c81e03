package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"pantry_backend/internal/app/router"
	authadapters "pantry_backend/internal/feature/auth/adapters"
	authhandler "pantry_backend/internal/feature/auth/transport/handler"
	authusecase "pantry_backend/internal/feature/auth/usecase"
	invadapters "pantry_backend/internal/feature/inventory/adapters"
	invhandler "pantry_backend/internal/feature/inventory/transport/handler"
	invusecase "pantry_backend/internal/feature/inventory/usecase"
	taxadapters "pantry_backend/internal/feature/taxonomy/adapters"
	"pantry_backend/internal/feature/taxonomy/catalog"
	taxhandler "pantry_backend/internal/feature/taxonomy/transport/handler"
	taxusecase "pantry_backend/internal/feature/taxonomy/usecase"
	"pantry_backend/internal/platform/config"
	platformdb "pantry_backend/internal/platform/db"
	platformjwt "pantry_backend/internal/platform/jwt"
	platformredis "pantry_backend/internal/platform/redis"
	"pantry_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	db, err := platformdb.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis backs the auth rate limiter; without it the server still runs,
	// just unthrottled.
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		slog.Warn("Redis unavailable. Running without rate limiting.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	policy, err := taxusecase.ParsePolicy(cfg.TaxonomyPolicy)
	if err != nil {
		slog.Error("invalid taxonomy policy", "error", err)
		os.Exit(1)
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	taxRepo := taxadapters.NewTaxonomyGorm(db)
	itemRepo := invadapters.NewItemGorm(db)
	areaRepo := invadapters.NewStorageAreaGorm(db)
	locationRepo := invadapters.NewLocationGorm(db)

	// Usecase
	jwtGen := platformjwt.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	provisionUC := taxusecase.NewProvisionUsecase(taxRepo, catalog.Default(), policy)
	taxonomyUC := taxusecase.NewTaxonomyUsecase(taxRepo)
	itemUC := invusecase.NewItemUsecase(itemRepo)
	areaUC := invusecase.NewStorageAreaUsecase(areaRepo)
	locationUC := invusecase.NewLocationUsecase(locationRepo)

	// Handler
	handlers := router.Handlers{
		Auth:        authhandler.NewAuthHandler(authUC),
		Provision:   taxhandler.NewProvisionHandler(provisionUC),
		Taxonomy:    taxhandler.NewTaxonomyHandler(taxonomyUC),
		Items:       invhandler.NewItemHandler(itemUC),
		StorageArea: invhandler.NewStorageAreaHandler(areaUC),
		Location:    invhandler.NewLocationHandler(locationUC),
	}

	authLimiter := ratelimiter.NewRateLimiter(rdb, 10, time.Minute, "auth")
	r := router.NewRouter(handlers, cfg.JWTSecret, authLimiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
