// Package config は環境変数から設定を読み込み、アプリケーション全体で使用する設定を提供します。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel は解析に使用する既定のモデルIDです。
	DefaultModel = "claude-3-5-sonnet-20241022"
	// DefaultMaxTokens は応答トークン数の上限です。
	DefaultMaxTokens = 8192
	// DefaultMaxFileSize はプロバイダーが受け付けるPDFリクエストの上限（32MiB）です。
	DefaultMaxFileSize = 32 << 20
)

// Config はアプリケーションの設定を保持する構造体です。
// 起動時に一度だけ構築し、以降は読み取り専用として扱います。
type Config struct {
	// プロバイダー設定
	AnthropicAPIKey  string        // Anthropic APIキー
	AnthropicModel   string        // 使用するモデルID
	AnthropicBaseURL string        // APIエンドポイントの上書き（空ならSDK既定）
	MaxTokens        int64         // 応答トークン数の上限
	ProviderTimeout  time.Duration // 外部呼び出しのタイムアウト（0なら無制限）

	// サーバー設定
	Port    string // APIサーバーのポート番号
	GinMode string // Ginの実行モード (debug, release, test)

	// ログ設定
	LogLevel  string // logrus のレベル
	LogFormat string // text または json

	// CORS設定
	CORSAllowedOrigins string // CORS許可オリジン（カンマ区切り）

	// アップロード設定
	MaxFileSize    int64 // 単一ファイルの最大サイズ（バイト、0で無制限）
	StrictPDFCheck bool  // true の場合はシグネチャでPDFかどうかを検証する

	// 認証設定
	APITokenHash string // 共有トークンの bcrypt ハッシュ（空なら認証なし）
}

// Load は環境変数から設定を読み込みます。
// .env.local ファイルが存在する場合はそこから読み込みます。
func Load() (*Config, error) {
	loadEnvFile()

	config := &Config{
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", DefaultModel),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
		MaxTokens:        getEnvAsInt64("ANTHROPIC_MAX_TOKENS", DefaultMaxTokens),
		ProviderTimeout:  time.Duration(getEnvAsInt("ANTHROPIC_TIMEOUT_SECONDS", 0)) * time.Second,

		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", DefaultMaxFileSize),
		StrictPDFCheck: getEnvAsBool("STRICT_PDF_CHECK", false),

		APITokenHash: getEnv("API_TOKEN_HASH", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	if err := godotenv.Load(".env.local"); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}

	_ = godotenv.Load(filepath.Join(parent, ".env.local"))
}

// Validate は設定の妥当性を検証します。
func (c *Config) Validate() error {
	if c.AnthropicModel == "" {
		return fmt.Errorf("ANTHROPIC_MODEL must not be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("ANTHROPIC_MAX_TOKENS must be positive (got %d)", c.MaxTokens)
	}
	if c.ProviderTimeout < 0 {
		return fmt.Errorf("ANTHROPIC_TIMEOUT_SECONDS must not be negative")
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("MAX_FILE_SIZE must not be negative")
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json (got %q)", c.LogFormat)
	}

	// ローカル開発ではキー未設定でも起動できるようにする
	// その場合、解析リクエストはプロバイダー側の認証エラーで失敗する
	if c.GinMode == "release" && c.AnthropicAPIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is required in release mode")
	}

	return nil
}

// AllowedOrigins は CORS 許可オリジンを配列で返します。
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します。
func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt は環境変数を整数として取得します。
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 は環境変数を64ビット整数として取得します。
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
