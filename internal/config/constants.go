// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "cohort-lms"
	AppVersion = "0.4.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultDatabaseDriver  = "postgres"
	DefaultMaxIdleConns    = 10
	DefaultMaxOpenConns    = 100
	DefaultConnMaxLifetime = time.Hour
	DefaultIdentityTimeout = 5 * time.Second
	DefaultMailerType      = "log"
)
