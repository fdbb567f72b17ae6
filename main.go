package main

import (
	"log/slog"
	"os"

	api "insightflo-backend/cmd/api"
	authdomain "insightflo-backend/internal/auth/domain"
	authRepo "insightflo-backend/internal/auth/repository"
	authUsecase "insightflo-backend/internal/auth/usecase"
	newsdomain "insightflo-backend/internal/news/domain"
	newsRepo "insightflo-backend/internal/news/repository"
	newsUsecase "insightflo-backend/internal/news/usecase"
	"insightflo-backend/pkg/config"
	"insightflo-backend/pkg/database"
	"insightflo-backend/pkg/logger"
	"insightflo-backend/pkg/password"
	"insightflo-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &newsdomain.News{}, &newsdomain.UserKeyword{}); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	newsRepository := newsRepo.NewNewsRepository(db)
	keywordRepo := newsRepo.NewKeywordRepository(db)

	// Initialize auth primitives
	hasher := password.NewHasher(cfg.BcryptCost)
	issuer := token.NewIssuer(token.Config{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      cfg.JWTAudience,
		AccessTTL:     cfg.JWTAccessExpiry,
		RefreshTTL:    cfg.JWTRefreshExpiry,
	})

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, hasher, issuer)
	newsUsecaseInstance := newsUsecase.NewNewsUsecase(newsRepository, keywordRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, newsUsecaseInstance, issuer)

	slog.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
