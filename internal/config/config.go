package config

import (
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	App       AppConfig
	Server    ServerConfig
	RateLimit RateLimitConfig
}

// AppConfig はアプリケーション全体の設定
type AppConfig struct {
	Env         string // development / production
	CatalogPath string // 起動時に読み込むカタログファイル（空なら読み込まない）
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// RateLimitConfig はAPIレート制限の設定
type RateLimitConfig struct {
	RPS   float64 // 1秒あたりの許容リクエスト数
	Burst int
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		App: AppConfig{
			Env:         getEnv("APP_ENV", "development"),
			CatalogPath: getEnv("CATALOG_PATH", ""),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloatEnv("RATE_LIMIT_RPS", 100),
			Burst: getIntEnv("RATE_LIMIT_BURST", 200),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
