package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Session  SessionConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// Expiry is the lifetime of an issued bearer token.
func (c JWTConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

type SessionConfig struct {
	Path           string
	CookieName     string
	TTLHours       int
	Secure         bool
	CleanupMinutes int
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

func (c SessionConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupMinutes) * time.Minute
}

type HTTPConfig struct {
	CORSOrigins   []string
	AuthRateLimit int
}

// LoadConfig reads .env from the working directory, falling back to the
// process environment when the file is absent.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-social")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "epita")
	v.SetDefault("JWT_EXPIRY_HOURS", 1)
	v.SetDefault("SESSION_PATH", "data/sessions")
	v.SetDefault("SESSION_COOKIE", "sid")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("SESSION_SECURE", false)
	v.SetDefault("SESSION_CLEANUP_MINUTES", 15)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("AUTH_RATE_LIMIT", 20)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		secret = v.GetString("JWT_SECRET_KEY")
	}

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
		},
		JWT: JWTConfig{
			Secret:      secret,
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		Session: SessionConfig{
			Path:           v.GetString("SESSION_PATH"),
			CookieName:     v.GetString("SESSION_COOKIE"),
			TTLHours:       v.GetInt("SESSION_TTL_HOURS"),
			Secure:         v.GetBool("SESSION_SECURE"),
			CleanupMinutes: v.GetInt("SESSION_CLEANUP_MINUTES"),
		},
		HTTP: HTTPConfig{
			CORSOrigins:   splitList(v.GetString("CORS_ORIGINS")),
			AuthRateLimit: v.GetInt("AUTH_RATE_LIMIT"),
		},
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
