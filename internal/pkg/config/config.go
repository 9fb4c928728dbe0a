package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Mail    MailConfig
	Notify  NotifyConfig
	Archive ArchiveConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           string `envconfig:"DB_PORT" default:"5432"`
	User           string `envconfig:"DB_USER" required:"true"`
	Password       string `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string `envconfig:"DB_NAME" required:"true"`
	SSLMode        string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone       string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns       int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MigrateOnStart bool   `envconfig:"DB_MIGRATE_ON_START" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
	// desktop clients load the UI from file:// and send Origin: null
	AllowFiles bool `envconfig:"CORS_ALLOW_FILES" default:"false"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// MailConfig leaves Host empty to disable SMTP delivery; jobs are then only logged.
type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USER" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"MAIL_FROM" default:"reservas@localhost"`
	FromName string `envconfig:"MAIL_FROM_NAME" default:"Reservas"`
	TLS      bool   `envconfig:"SMTP_TLS" default:"true"`
}

type NotifyConfig struct {
	PollInterval time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"5s"`
	BatchSize    int           `envconfig:"NOTIFY_BATCH_SIZE" default:"20"`
	MaxAttempts  int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	BaseBackoff  time.Duration `envconfig:"NOTIFY_BASE_BACKOFF" default:"30s"`
	ClaimLease   time.Duration `envconfig:"NOTIFY_CLAIM_LEASE" default:"5m"`
	WorkerEnable bool          `envconfig:"NOTIFY_WORKER_ENABLED" default:"true"`
}

// ArchiveConfig enables the S3 snapshot export when Bucket is set.
type ArchiveConfig struct {
	Bucket   string `envconfig:"ARCHIVE_S3_BUCKET" default:""`
	Prefix   string `envconfig:"ARCHIVE_S3_PREFIX" default:"archive"`
	Region   string `envconfig:"ARCHIVE_S3_REGION" default:"us-east-1"`
	Endpoint string `envconfig:"ARCHIVE_S3_ENDPOINT" default:""`
	// static credentials are optional; the default AWS chain is used otherwise
	AccessKey string `envconfig:"ARCHIVE_S3_ACCESS_KEY" default:""`
	SecretKey string `envconfig:"ARCHIVE_S3_SECRET_KEY" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ArchiveConfig) Enabled() bool {
	return c.Bucket != ""
}

func (c *MailConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			TimeZone:       "UTC",
			MaxConns:       5,
			MigrateOnStart: true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e",
			Duration: "1h",
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Mail:   MailConfig{From: "reservas@test.local", FromName: "Reservas"},
		Notify: NotifyConfig{
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
			BaseBackoff:  time.Second,
			ClaimLease:   time.Minute,
			WorkerEnable: false,
		},
	}
}
