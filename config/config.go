package config

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	Port        string
	GinMode     string
	BaseURL     string
	CorsOrigins []string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresTimeZone string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Edge-level HTTP Basic gate. Disabled when either value is empty.
	SiteAuthUsername string
	SiteAuthPassword string

	// Hex SHA-256 of the site password. Disabled when empty.
	SitePasswordHash string
	JWTSecret        string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailFrom     string

	LogLevel  string
	LogFormat string
)

// LoadConfig reads the .env file (if any) and the process environment into the package variables
func LoadConfig() error {
	// A missing .env file is fine, the environment alone is enough
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "hypnoraffle")
	v.SetDefault("POSTGRES_TIMEZONE", "UTC")

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")

	v.SetDefault("MAIL_PORT", "587")
	v.SetDefault("MAIL_FROM", "raffle@localhost")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	Port = v.GetString("PORT")
	GinMode = v.GetString("GIN_MODE")
	BaseURL = strings.TrimRight(v.GetString("BASE_URL"), "/")
	CorsOrigins = splitList(v.GetString("CORS_ORIGINS"))

	PostgresHost = v.GetString("POSTGRES_HOST")
	PostgresPort = v.GetString("POSTGRES_PORT")
	PostgresUser = v.GetString("POSTGRES_USER")
	PostgresPassword = v.GetString("POSTGRES_PASSWORD")
	PostgresDB = v.GetString("POSTGRES_DB")
	PostgresTimeZone = v.GetString("POSTGRES_TIMEZONE")

	RedisHost = v.GetString("REDIS_HOST")
	RedisPort = v.GetString("REDIS_PORT")
	RedisPassword = v.GetString("REDIS_PASSWORD")

	SiteAuthUsername = v.GetString("SITE_AUTH_USERNAME")
	SiteAuthPassword = v.GetString("SITE_AUTH_PASSWORD")
	SitePasswordHash = strings.ToLower(strings.TrimSpace(v.GetString("SITE_PASSWORD_HASH")))
	JWTSecret = v.GetString("JWT_SECRET")

	MailHost = v.GetString("MAIL_HOST")
	MailPort = v.GetString("MAIL_PORT")
	MailUsername = v.GetString("MAIL_USERNAME")
	MailPassword = v.GetString("MAIL_PASSWORD")
	MailFrom = v.GetString("MAIL_FROM")

	LogLevel = v.GetString("LOG_LEVEL")
	LogFormat = v.GetString("LOG_FORMAT")

	return Validate()
}

// Validate checks the values that would otherwise fail late at request time
func Validate() error {
	if p, err := strconv.Atoi(Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid PORT %q", Port)
	}
	if SitePasswordHash != "" {
		if b, err := hex.DecodeString(SitePasswordHash); err != nil || len(b) != 32 {
			return fmt.Errorf("SITE_PASSWORD_HASH must be a hex encoded SHA-256 digest")
		}
	}
	if JWTSecret != "" && len(JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.TrimRight(item, "/"))
		}
	}
	return out
}
