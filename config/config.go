package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig           `envconfig:"APP"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP_SERVER"`
	Database      DatabaseConfig      `envconfig:"DATABASE"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	MessageStream MessageStreamConfig `envconfig:"MESSAGE_STREAM"`
	Gateway       GatewayConfig       `envconfig:"GATEWAY"`
	Storage       StorageConfig       `envconfig:"STORAGE"`
	Mail          MailConfig          `envconfig:"MAIL"`
	Jwt           JwtConfig           `envconfig:"JWT"`
	Otp           OtpConfig           `envconfig:"OTP"`
	Booking       BookingConfig       `envconfig:"BOOKING"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
	RateLimit     RateLimitConfig     `envconfig:"RATE_LIMIT"`
}

type AppConfig struct {
	Name     string `envconfig:"NAME" default:"camera-rental-service"`
	Env      string `envconfig:"ENV" default:"local"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	BodyLimit       int           `envconfig:"BODY_LIMIT" default:"6291456"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"camera_rental"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

// RateLimitConfig is a fixed window per client ip and route.
type RateLimitConfig struct {
	Enabled bool          `envconfig:"ENABLED" default:"true"`
	Limit   int64         `envconfig:"LIMIT" default:"5"`
	Window  time.Duration `envconfig:"WINDOW" default:"1m"`
}

type HttpClientConfig struct {
	// Type selects the breaker: consecutive, threshold or rate.
	Type                  string        `envconfig:"TYPE" default:"consecutive"`
	Threshold             int64         `envconfig:"THRESHOLD" default:"5"`
	Rate                  float64       `envconfig:"RATE" default:"0.5"`
	MinSamples            int64         `envconfig:"MIN_SAMPLES" default:"10"`
	Timeout               time.Duration `envconfig:"TIMEOUT" default:"15s"`
	MaxIdleConns          int           `envconfig:"MAX_IDLE_CONNS" default:"20"`
	IdleConnTimeout       time.Duration `envconfig:"IDLE_CONN_TIMEOUT" default:"90s"`
	TLSHandshakeTimeout   time.Duration `envconfig:"TLS_HANDSHAKE_TIMEOUT" default:"5s"`
	ResponseHeaderTimeout time.Duration `envconfig:"RESPONSE_HEADER_TIMEOUT" default:"10s"`
}

type MessageStreamConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"5672"`
	Username     string `envconfig:"USERNAME" default:"guest"`
	Password     string `envconfig:"PASSWORD" default:"guest"`
	ExchangeName string `envconfig:"EXCHANGE_NAME" default:"camera_rental"`
	MaxRetries   int    `envconfig:"MAX_RETRIES" default:"3"`
}

type GatewayConfig struct {
	Provider string `envconfig:"PROVIDER" default:"midtrans"`
	// PaymentTTL is the gateway payment window handed to every charge.
	PaymentTTL time.Duration `envconfig:"PAYMENT_TTL" default:"24h"`
	// ExpiryGrace delays the status check after the gateway expiry.
	ExpiryGrace time.Duration  `envconfig:"EXPIRY_GRACE" default:"5m"`
	Currency    string         `envconfig:"CURRENCY" default:"IDR"`
	Midtrans    MidtransConfig `envconfig:"MIDTRANS"`
	Stripe      StripeConfig   `envconfig:"STRIPE"`
}

type MidtransConfig struct {
	BaseURL   string `envconfig:"BASE_URL" default:"https://api.sandbox.midtrans.com"`
	SnapURL   string `envconfig:"SNAP_URL" default:"https://app.sandbox.midtrans.com/snap/v1/transactions"`
	ServerKey string `envconfig:"SERVER_KEY"`
	Bank      string `envconfig:"BANK" default:"bca"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"SECRET_KEY"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`
}

type StorageConfig struct {
	Driver        string        `envconfig:"DRIVER" default:"local"`
	LocalDir      string        `envconfig:"LOCAL_DIR" default:"./uploads"`
	PublicBaseURL string        `envconfig:"PUBLIC_BASE_URL" default:"/uploads"`
	MaxSize       int64         `envconfig:"MAX_SIZE" default:"5242880"`
	S3Bucket      string        `envconfig:"S3_BUCKET"`
	S3PresignTTL  time.Duration `envconfig:"S3_PRESIGN_TTL" default:"1h"`
}

type MailConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM" default:"no-reply@camera-rental.local"`
	FromName string `envconfig:"FROM_NAME" default:"Camera Rental"`
}

type JwtConfig struct {
	Secret string        `envconfig:"SECRET" default:"change-me"`
	TTL    time.Duration `envconfig:"TTL" default:"24h"`
	Issuer string        `envconfig:"ISSUER" default:"camera-rental-service"`
}

type OtpConfig struct {
	TTL            time.Duration `envconfig:"TTL" default:"5m"`
	Length         int           `envconfig:"LENGTH" default:"6"`
	ResendInterval time.Duration `envconfig:"RESEND_INTERVAL" default:"60s"`
	BcryptCost     int           `envconfig:"BCRYPT_COST" default:"10"`
	MaxAttempts    int64         `envconfig:"MAX_ATTEMPTS" default:"5"`
}

type BookingConfig struct {
	// HoldTTL releases PENDING bookings that never got a payment.
	HoldTTL    time.Duration `envconfig:"HOLD_TTL" default:"30m"`
	LockTTL    time.Duration `envconfig:"LOCK_TTL" default:"10s"`
	SweepLimit int           `envconfig:"SWEEP_LIMIT" default:"100"`
}

type SchedulerConfig struct {
	MonitoringPort    string        `envconfig:"MONITORING_PORT" default:"8080"`
	Concurrency       int           `envconfig:"CONCURRENCY" default:"10"`
	OtpCleanupEvery   time.Duration `envconfig:"OTP_CLEANUP_EVERY" default:"5m"`
	PaymentSweepEvery time.Duration `envconfig:"PAYMENT_SWEEP_EVERY" default:"1m"`
}

func InitConfig() *Config {
	// .env is optional, the real environment always wins
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("error load config: %v", err)
	}

	return &cfg
}
