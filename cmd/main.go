// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"studystack/internal/config"
	"studystack/internal/handlers"
	"studystack/internal/middleware"
	"studystack/internal/repository"
	"studystack/internal/scheduler"
	"studystack/internal/service"
	"studystack/internal/session"

	"gorm.io/gorm"
)

func init() {
	// .env はローカル開発用。本番では環境変数を直接渡す
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env file: %v", err)
	}
}

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. Database
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

	// 2. Dependency Injection
	deckRepo := repository.NewGormDeckRepository()
	feed := service.NewDeckFeed()
	deckService := service.NewDeckService(db, deckRepo, feed, config.Cfg.App.MaxImportRows)

	registry := session.NewRegistry()
	sessionService := service.NewSessionService(deckService, registry, nil)

	sweeper := scheduler.New(registry, config.Cfg.Session.IdleTimeout, config.Cfg.Session.SweepInterval, logger)
	if err := sweeper.Start(); err != nil {
		slog.Error("Error starting session sweeper", slog.Any("error", err))
		os.Exit(1)
	}
	defer sweeper.Stop()

	auth := middleware.DevOwnerContextMiddleware
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		auth = middleware.JWTAuthMiddleware(config.Cfg.Auth.JWTSecret)
	} else {
		slog.Warn("Authentication disabled; owner is taken from the X-Owner-ID header")
	}

	// 3. Router
	r := handlers.NewRouter(handlers.RouterConfig{
		Logger:   logger,
		Decks:    handlers.NewDeckHandler(deckService, logger),
		Sessions: handlers.NewSessionHandler(sessionService, logger),
		Auth:     auth,
		CORS: cors.Options{
			AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
			AllowedMethods:   config.Cfg.CORS.AllowedMethods,
			AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
			ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
			AllowCredentials: config.Cfg.CORS.AllowCredentials,
			MaxAge:           config.Cfg.CORS.MaxAge,
			Debug:            false,
		},
		RequestTimeout: 60 * time.Second,
		Health:         healthCheck(db),
	})

	// 4. Start Server
	server := newServer(config.Cfg.Server.Port, r)

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

	log.Println("Server exiting")
}

// newServer は HTTP サーバーを作ります。
// Shutdown はアイドルでない接続を待つため、/decks/stream のような長寿命リクエストは
// ベースコンテキストのキャンセルで終わらせる。
func newServer(addr string, handler http.Handler) *http.Server {
	baseCtx, cancel := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancel)
	return server
}

// newLogger は設定のログレベルと APP_ENV に応じて slog ロガーを作ります。
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
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
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
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
	log.Println("Log Config Loaded...")
	return slog.New(handler)
}

func healthCheck(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
