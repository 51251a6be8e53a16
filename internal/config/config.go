package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName    string
	AppVersion string
	AppEnv     string
	Debug      bool
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	CORS       CORSConfig
	Upload     UploadConfig
	Telegram   TelegramConfig
	LogLevel   string
}

type ServerConfig struct {
	Host    string
	Port    string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	Algorithm     string
	AccessExpire  time.Duration
	RefreshExpire time.Duration
}

type CORSConfig struct {
	Origins []string
}

// Upload and Telegram settings are part of the declared configuration
// surface; no endpoint uses them yet.
type UploadConfig struct {
	Dir     string
	MaxSize int64
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "StreamHub API")
	viper.SetDefault("APP_VERSION", "0.1.0")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DEBUG", true)
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("SERVER_TIMEOUT", 30*time.Second)
	viper.SetDefault("DB_DRIVER", "sqlite3")
	viper.SetDefault("DB_DSN", "streamhub.db")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_SECRET_KEY", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_ALGORITHM", "HS256")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE", 72*time.Hour)
	viper.SetDefault("REFRESH_TOKEN_EXPIRE", 720*time.Hour)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	viper.SetDefault("UPLOAD_DIR", "uploads/")
	viper.SetDefault("MAX_UPLOAD_SIZE", int64(10*1024*1024))
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config

	cfg.AppName = viper.GetString("APP_NAME")
	cfg.AppVersion = viper.GetString("APP_VERSION")
	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.Debug = viper.GetBool("DEBUG")

	cfg.Server.Host = viper.GetString("SERVER_HOST")
	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Server.Timeout = viper.GetDuration("SERVER_TIMEOUT")

	cfg.Database.Driver = viper.GetString("DB_DRIVER")
	cfg.Database.DSN = viper.GetString("DB_DSN")

	cfg.Redis.Host = viper.GetString("REDIS_HOST")
	cfg.Redis.Port = viper.GetString("REDIS_PORT")
	cfg.Redis.Password = viper.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = viper.GetInt("REDIS_DB")

	cfg.JWT.Secret = viper.GetString("JWT_SECRET_KEY")
	cfg.JWT.Algorithm = viper.GetString("JWT_ALGORITHM")
	cfg.JWT.AccessExpire = viper.GetDuration("ACCESS_TOKEN_EXPIRE")
	cfg.JWT.RefreshExpire = viper.GetDuration("REFRESH_TOKEN_EXPIRE")

	cfg.CORS.Origins = splitOrigins(viper.GetString("CORS_ORIGINS"))

	cfg.Upload.Dir = viper.GetString("UPLOAD_DIR")
	cfg.Upload.MaxSize = viper.GetInt64("MAX_UPLOAD_SIZE")

	cfg.Telegram.BotToken = viper.GetString("TELEGRAM_BOT_TOKEN")
	cfg.Telegram.ChatID = viper.GetString("TELEGRAM_CHAT_ID")

	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return &cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
