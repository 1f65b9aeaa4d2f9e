package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - Integrations (Stripe, Firestore, Cloudinary, Expo, AI) are optional; empty values disable them
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Reward     RewardConfig
	RateLimit  RateLimitConfig
	Stripe     StripeConfig
	Firestore  FirestoreConfig
	Cloudinary CloudinaryConfig
	Push       PushConfig
	AI         AIConfig
	Outbox     OutboxConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Stripe-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer               string        `envconfig:"JWT_ISSUER" default:"fervo"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RewardConfig struct {
	PerShare        int `envconfig:"REWARD_PER_SHARE" default:"10"`
	CouponThreshold int `envconfig:"REWARD_COUPON_THRESHOLD" default:"100"`
}

type RateLimitConfig struct {
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"1"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"5"`
	// IdleTTL drops a client's bucket after this long without requests.
	IdleTTL time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" default:""`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	PriceBasic    string `envconfig:"STRIPE_PRICE_BASIC" default:""`
	PricePro      string `envconfig:"STRIPE_PRICE_PRO" default:""`
	SuccessURL    string `envconfig:"STRIPE_SUCCESS_URL" default:"http://localhost:3000/partner/billing?status=success"`
	CancelURL     string `envconfig:"STRIPE_CANCEL_URL" default:"http://localhost:3000/partner/billing?status=cancel"`
}

func (c StripeConfig) Enabled() bool { return c.SecretKey != "" }

type FirestoreConfig struct {
	ProjectID       string `envconfig:"FIRESTORE_PROJECT_ID" default:""`
	CredentialsFile string `envconfig:"FIRESTORE_CREDENTIALS_FILE" default:""`
}

func (c FirestoreConfig) Enabled() bool { return c.ProjectID != "" }

type CloudinaryConfig struct {
	URL    string `envconfig:"CLOUDINARY_URL" default:""`
	Folder string `envconfig:"CLOUDINARY_FOLDER" default:"venues"`
}

func (c CloudinaryConfig) Enabled() bool { return c.URL != "" }

type PushConfig struct {
	ExpoAccessToken string `envconfig:"EXPO_ACCESS_TOKEN" default:""`
	Enabled         bool   `envconfig:"PUSH_ENABLED" default:"false"`
}

type AIConfig struct {
	GoogleAPIKey string `envconfig:"GOOGLE_GENAI_API_KEY" default:""`
	Model        string `envconfig:"AI_MODEL" default:"googleai/gemini-2.5-flash"`
	MaxComments  int    `envconfig:"AI_MAX_COMMENTS" default:"50"`
}

func (c AIConfig) Enabled() bool { return c.GoogleAPIKey != "" }

type OutboxConfig struct {
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"20"`
	MaxAttempts  int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
	BaseBackoff  time.Duration `envconfig:"OUTBOX_BASE_BACKOFF" default:"5s"`
	Lease        time.Duration `envconfig:"OUTBOX_LEASE" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-testing-only",
			Issuer:               "fervo-test",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Reward: RewardConfig{
			PerShare:        10,
			CouponThreshold: 100,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			RPS:     100,
			Burst:   100,
			IdleTTL: time.Minute,
		},
		AI: AIConfig{
			MaxComments: 50,
		},
		Outbox: OutboxConfig{
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
			BaseBackoff:  10 * time.Millisecond,
			Lease:        time.Second,
		},
	}
}
