// internal/config/constants.go
package config

import (
	"strings"
	"time"
)

// アプリケーション情報
const (
	AppName    = "studystack"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultDatabaseDriver       = "postgres"
	DefaultLogLevel             = "info"
	DefaultAuthEnabled          = false
	DefaultSessionIdleTimeout   = 30 * time.Minute
	DefaultSessionSweepInterval = time.Minute
	DefaultMaxImportRows        = 500
)

var envKeyReplacer = strings.NewReplacer(".", "_")
