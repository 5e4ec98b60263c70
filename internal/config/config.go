// internal/config/config.go
package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Session  SessionConfig  `mapstructure:"session"`
	App      AppConfig      `mapstructure:"app"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "postgres" or "sqlite"
	URL    string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type SessionConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type AppConfig struct {
	MaxImportRows int `mapstructure:"max_import_rows"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// APP_DATABASE_URL のように接頭辞付きの環境変数で上書きできる
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("database.url", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyFallbacks(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Database Driver: %s", Cfg.Database.Driver)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Session Idle Timeout: %s", Cfg.Session.IdleTimeout)

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Owner-ID"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("session.idle_timeout", DefaultSessionIdleTimeout)
	v.SetDefault("session.sweep_interval", DefaultSessionSweepInterval)
	v.SetDefault("app.max_import_rows", DefaultMaxImportRows)
}

// applyFallbacks repairs values that were set but unusable.
func applyFallbacks(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Session.IdleTimeout <= 0 {
		log.Printf("Session idle timeout invalid, using default '%s'", DefaultSessionIdleTimeout)
		cfg.Session.IdleTimeout = DefaultSessionIdleTimeout
	}
	if cfg.Session.SweepInterval <= 0 {
		log.Printf("Session sweep interval invalid, using default '%s'", DefaultSessionSweepInterval)
		cfg.Session.SweepInterval = DefaultSessionSweepInterval
	}
	if cfg.App.MaxImportRows <= 0 {
		log.Printf("Max import rows invalid, using default '%d'", DefaultMaxImportRows)
		cfg.App.MaxImportRows = DefaultMaxImportRows
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		log.Println("Warning: auth is enabled but auth.jwt_secret is empty; every token will be rejected.")
	}
}
