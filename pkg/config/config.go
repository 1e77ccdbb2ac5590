package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and
// optionally from a .env file).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	SMTP    SMTPConfig
	SMS     SMSConfig
	AI      AIConfig
	Storage StorageConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env           string // development, staging, production
	Name          string
	CompanyName   string // shown in outbound email and PDFs
	FromEmail     string
	PublicBaseURL string // base for estimate-response and payment links
}

// DBConfig PostgreSQL settings. If DatabaseURL is set it is used as the full
// connection string; otherwise the DSN is built from the individual fields.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DATABASE_URL if defined, otherwise DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding credentials.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig token settings. ActionExpDays applies to estimate response links.
type JWTConfig struct {
	Secret        string
	Expiration    int // minutes, login tokens
	Issuer        string
	ActionExpDays int // estimate approve/decline links
}

// HTTPConfig server listen settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMTPConfig outbound email settings. Empty Host disables sending.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMSConfig settings for the SMS provider (Twilio-compatible REST API).
// Empty AccountSID disables SMS sending.
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// AIConfig settings for the LLM task-suggestion service.
type AIConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
}

// StorageConfig local document storage settings.
type StorageConfig struct {
	UploadDir string
	BaseURL   string // public prefix for uploaded files, e.g. /uploads
}

// Load reads configuration from environment variables (and optionally from a
// .env file in the working directory). Env vars take priority.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:           getString(v, "APP_ENV", "development"),
			Name:          getString(v, "APP_NAME", "hvac-ops-api"),
			CompanyName:   getString(v, "COMPANY_NAME", "Cool Tech Designs"),
			FromEmail:     getString(v, "FROM_EMAIL", "noreply@cooltechdesigns.example"),
			PublicBaseURL: getString(v, "PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "hvac_ops"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:        getString(v, "JWT_SECRET", ""),
			Expiration:    getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:        getString(v, "JWT_ISSUER", "hvac-ops-api"),
			ActionExpDays: getInt(v, "JWT_ACTION_EXP_DAYS", 30),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			Username: getString(v, "SMTP_USERNAME", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
		},
		SMS: SMSConfig{
			AccountSID: getString(v, "SMS_ACCOUNT_SID", ""),
			AuthToken:  getString(v, "SMS_AUTH_TOKEN", ""),
			FromNumber: getString(v, "SMS_FROM_NUMBER", ""),
		},
		AI: AIConfig{
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		},
		Storage: StorageConfig{
			UploadDir: getString(v, "UPLOAD_DIR", "./uploads"),
			BaseURL:   getString(v, "UPLOAD_BASE_URL", "/uploads"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
