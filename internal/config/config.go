// internal/config/config.go
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// CatalogConfig は単語カタログの取得元を指定する
type CatalogConfig struct {
	Source           string        `mapstructure:"source"` // static | probe | manifest | file
	BaseURL          string        `mapstructure:"base_url"`
	ManifestURL      string        `mapstructure:"manifest_url"`
	ManifestPath     string        `mapstructure:"manifest_path"`
	ImageDir         string        `mapstructure:"image_dir"`
	ImageExt         string        `mapstructure:"image_ext"`
	Language         string        `mapstructure:"language"`
	Words            []string      `mapstructure:"words"`
	ProbeTimeout     time.Duration `mapstructure:"probe_timeout"`
	ProbeConcurrency int           `mapstructure:"probe_concurrency"`
}

type GameConfig struct {
	SessionHistory int   `mapstructure:"session_history"`
	RandomSeed     int64 `mapstructure:"random_seed"` // 0 = 時刻から生成
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Game    GameConfig    `mapstructure:"game"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 例: APP_DATABASE_URL → database.url
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Warn("Config file not found. Using default settings or environment variables if available.")
		} else {
			slog.Error("Error reading config file", "error", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		slog.Error("Error unmarshalling config", "error", err)
		return err
	}

	applyDefaults(&Cfg)

	slog.Info("Config loaded successfully",
		"port", Cfg.Server.Port,
		"db_driver", Cfg.Database.Driver,
		"auth_enabled", Cfg.Auth.Enabled,
		"catalog_source", Cfg.Catalog.Source,
		"catalog_language", Cfg.Catalog.Language,
	)
	return nil
}

// --- デフォルト値の設定 ---
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		slog.Info("Server port not set, using default", "port", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Database.Driver == "" {
		slog.Info("Database driver not set, using default", "driver", DefaultDatabaseDriver)
		c.Database.Driver = DefaultDatabaseDriver
	}
	if c.Database.URL == "" {
		if c.Database.Driver == "sqlite" {
			c.Database.URL = DefaultSQLitePath
		} else {
			slog.Warn("Database URL is not set in config.")
		}
	}
	if !viper.IsSet("auth.enabled") {
		slog.Info("Auth enabled flag not set, defaulting", "enabled", DefaultAuthEnabled)
		c.Auth.Enabled = DefaultAuthEnabled
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		slog.Warn("Auth is enabled but jwt.secret_key is empty; every token will be rejected")
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{DefaultCORSOrigin}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Learner-ID", "X-Request-Id"}
	}
	if c.CORS.MaxAge <= 0 {
		c.CORS.MaxAge = DefaultCORSMaxAge
	}

	if c.Catalog.Source == "" {
		c.Catalog.Source = DefaultCatalogSource
	}
	if c.Catalog.ImageDir == "" {
		c.Catalog.ImageDir = DefaultImageDir
	}
	if c.Catalog.ImageExt == "" {
		c.Catalog.ImageExt = DefaultImageExt
	}
	if c.Catalog.Language == "" {
		c.Catalog.Language = DefaultLanguage
	}
	if c.Catalog.ProbeTimeout <= 0 {
		c.Catalog.ProbeTimeout = DefaultProbeTimeout
	}
	if c.Catalog.ProbeConcurrency <= 0 {
		c.Catalog.ProbeConcurrency = DefaultProbeConcurrency
	}

	if c.Game.SessionHistory <= 0 {
		slog.Info("Game session history not set or invalid, using default", "session_history", DefaultSessionHistory)
		c.Game.SessionHistory = DefaultSessionHistory
	}
}
