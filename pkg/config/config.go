package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
)

const (
	DirectoryDatabase = "database"
	DirectoryStatic   = "static"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Stats     StatsConfig
	Directory DirectoryConfig
	Vote      VoteConfig
	I18n      I18nConfig
	Metrics   MetricsConfig
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	QueryTimeout time.Duration
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// StatsConfig governs aggregation windows and payload caching.
type StatsConfig struct {
	CacheEnabled  bool
	CacheTTL      time.Duration
	RecencyWindow time.Duration
	Timezone      string
}

// Location resolves the configured timezone, falling back to the process local zone.
func (c StatsConfig) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DirectoryConfig selects where class/teacher associations are resolved from.
type DirectoryConfig struct {
	Source string
}

// VoteConfig tunes the voting form rules.
type VoteConfig struct {
	MinRatedRatio float64
}

// I18nConfig holds display language preferences.
type I18nConfig struct {
	DefaultLanguage string
	CookieName      string
	CookieMaxAge    time.Duration
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Driver:       normalizeDriver(v.GetString("DB_DRIVER")),
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		QueryTimeout: parseDuration(v.GetString("DB_QUERY_TIMEOUT"), 5*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:        v.GetString("REDIS_HOST"),
		Port:        v.GetInt("REDIS_PORT"),
		Password:    v.GetString("REDIS_PASSWORD"),
		DB:          v.GetInt("REDIS_DB"),
		KeyPrefix:   v.GetString("REDIS_KEY_PREFIX"),
		DialTimeout: parseDuration(v.GetString("REDIS_DIAL_TIMEOUT"), 5*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Stats = StatsConfig{
		CacheEnabled:  v.GetBool("ENABLE_STATS_CACHE"),
		CacheTTL:      parseDuration(v.GetString("STATS_CACHE_TTL"), 2*time.Minute),
		RecencyWindow: parseDuration(v.GetString("RATINGS_RECENCY_WINDOW"), 30*24*time.Hour),
		Timezone:      v.GetString("STATS_TIMEZONE"),
	}

	cfg.Directory = DirectoryConfig{Source: normalizeDirectory(v.GetString("DIRECTORY_SOURCE"))}

	cfg.Vote = VoteConfig{MinRatedRatio: parseRatio(v.GetString("VOTE_MIN_RATED_RATIO"), 0.5)}

	cfg.I18n = I18nConfig{
		DefaultLanguage: strings.ToLower(strings.TrimSpace(v.GetString("DEFAULT_LANGUAGE"))),
		CookieName:      v.GetString("LANGUAGE_COOKIE"),
		CookieMaxAge:    parseDuration(v.GetString("LANGUAGE_COOKIE_MAX_AGE"), 365*24*time.Hour),
	}

	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "teacher_eval")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_QUERY_TIMEOUT", "5s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "teacher-eval:")
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_STATS_CACHE", false)
	v.SetDefault("STATS_CACHE_TTL", "2m")
	v.SetDefault("RATINGS_RECENCY_WINDOW", "720h")
	v.SetDefault("STATS_TIMEZONE", "Local")

	v.SetDefault("DIRECTORY_SOURCE", DirectoryDatabase)
	v.SetDefault("VOTE_MIN_RATED_RATIO", "0.5")

	v.SetDefault("DEFAULT_LANGUAGE", "uz")
	v.SetDefault("LANGUAGE_COOKIE", "app_language")
	v.SetDefault("LANGUAGE_COOKIE_MAX_AGE", "8760h")

	v.SetDefault("ENABLE_METRICS", true)
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DriverPGX:
		return DriverPGX
	default:
		return DriverPostgres
	}
}

func normalizeDirectory(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DirectoryStatic:
		return DirectoryStatic
	default:
		return DirectoryDatabase
	}
}

func parseRatio(raw string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || f < 0 || f > 1 {
		return fallback
	}
	return f
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
