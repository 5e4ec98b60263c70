package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"studystack/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB は driver に応じて GORM の接続を作成し、スキーマを移行します。
// driver は "postgres" か "sqlite"。
func NewDB(driver, databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {
	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	dialector, err := openDialector(driver, databaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.String("driver", driver), slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	if _, ok := dialector.(*sqlite.Dialector); ok {
		// SQLite は書き込みが直列なので接続を1本に絞る
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := Migrate(db); err != nil {
		appLogger.Error("Error migrating database schema", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", driver))
	return db, nil
}

// Migrate creates or updates the tables the deck store needs.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Deck{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func openDialector(driver, databaseURL string) (gorm.Dialector, error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "":
		return postgres.Open(databaseURL), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(databaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
