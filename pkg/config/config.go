package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// CacheTTL is the freshness window for the events/cashbooks snapshots.
	CacheTTL time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AdminPasswordHash is the bcrypt hash the admin login is checked against.
	AdminPasswordHash string

	// RateLimit uses the limiter formatted syntax, e.g. "120-M".
	RateLimit string

	CORSAllowOrigins []string

	// AMQP settings for the recompute queue; empty URL disables publishing.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets export; empty spreadsheet id disables the exporter.
	SheetsSpreadsheetID   string
	SheetsCredentialsFile string
	SheetsLedgerSheetName string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CACHE_TTL", "2m")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "event-funds-app")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "ledger")
	viper.SetDefault("AMQP_QUEUE", "cashbook.recompute")
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("SHEETS_LEDGER_SHEET_NAME", "Ledger")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CacheTTL = viper.GetDuration("CACHE_TTL")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTExpiryDuration = viper.GetDuration("JWT_EXPIRY_DURATION")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")
	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPQueue = viper.GetString("AMQP_QUEUE")
	cfg.SheetsSpreadsheetID = viper.GetString("SHEETS_SPREADSHEET_ID")
	cfg.SheetsCredentialsFile = viper.GetString("SHEETS_CREDENTIALS_FILE")
	cfg.SheetsLedgerSheetName = viper.GetString("SHEETS_LEDGER_SHEET_NAME")

	return cfg, nil
}
