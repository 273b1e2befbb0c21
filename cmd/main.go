// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"go_5_memory_game/internal/catalog"
	"go_5_memory_game/internal/config"
	"go_5_memory_game/internal/game"
	"go_5_memory_game/internal/handlers"
	"go_5_memory_game/internal/repository"
	"go_5_memory_game/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env は任意
	if err := godotenv.Load(); err != nil {
		tempLogger.Debug("No .env file loaded", slog.Any("error", err))
	}

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. Database (GORM)
	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Catalog
	cat, err := catalog.New(config.Cfg.Catalog, &http.Client{Timeout: config.Cfg.Catalog.ProbeTimeout})
	if err != nil {
		slog.Error("Error configuring word catalog", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	seed := config.Cfg.Game.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator := game.NewGenerator(game.WithRandomizer(game.NewRandomizer(seed)))

	statsRepo := repository.NewGormStatisticsRepository()
	gameService := service.NewGameService(db, statsRepo, cat, generator, config.Cfg.Game.SessionHistory)

	router := handlers.NewRouter(handlers.RouterConfig{
		Game:        handlers.NewGameHandler(gameService, logger),
		Word:        handlers.NewWordHandler(gameService, logger),
		Health:      handlers.NewHealthHandler(db, logger),
		AuthEnabled: config.Cfg.Auth.Enabled,
		JWTSecret:   config.Cfg.JWT.SecretKey,
		CORS:        config.Cfg.CORS,
		Logger:      logger,
	})

	// 4. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON ハンドラを使う
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
