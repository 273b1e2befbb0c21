// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "memory-game"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = "postgres"
	DefaultSQLitePath     = "memory_game.db"
	DefaultAuthEnabled    = false
	DefaultCORSOrigin     = "http://localhost:3000"
	DefaultCORSMaxAge     = 300

	DefaultCatalogSource    = "static"
	DefaultImageDir         = "images"
	DefaultImageExt         = ".svg"
	DefaultLanguage         = "de"
	DefaultProbeTimeout     = 3 * time.Second
	DefaultProbeConcurrency = 8

	DefaultSessionHistory = 5
)
