package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig namespace for every setting.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Password  PasswordConfig
	RateLimit RateLimitConfig
	Storage   StorageConfig
	Media     MediaConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BEAUTYLAB_APP_ENV" default:"development"`
	Port         string `envconfig:"BEAUTYLAB_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"BEAUTYLAB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BEAUTYLAB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"BEAUTYLAB_DB_DSN" required:"true"`

	// AutoMigrate runs pending migrations on startup in dev.
	AutoMigrate bool `envconfig:"BEAUTYLAB_DB_AUTO_MIGRATE" default:"false"`

	MaxOpenConns    int           `envconfig:"BEAUTYLAB_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BEAUTYLAB_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BEAUTYLAB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BEAUTYLAB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; an empty URL disables every limiter that needs it.
type RedisConfig struct {
	URL          string        `envconfig:"BEAUTYLAB_REDIS_URL"`
	PoolSize     int           `envconfig:"BEAUTYLAB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BEAUTYLAB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BEAUTYLAB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BEAUTYLAB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BEAUTYLAB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"BEAUTYLAB_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BEAUTYLAB_JWT_ISSUER" default:"beautylab"`
	ExpirationMinutes int    `envconfig:"BEAUTYLAB_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// TTL returns the access token lifetime.
func (j JWTConfig) TTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"BEAUTYLAB_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"BEAUTYLAB_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"BEAUTYLAB_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"BEAUTYLAB_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"BEAUTYLAB_ARGON_KEY_LEN" default:"32"`
}

// RateLimitConfig holds the general API window and the stricter login window.
type RateLimitConfig struct {
	GeneralWindow   time.Duration `envconfig:"BEAUTYLAB_RATE_LIMIT_WINDOW" default:"15m"`
	GeneralLimit    int           `envconfig:"BEAUTYLAB_RATE_LIMIT_MAX" default:"100"`
	LoginWindow     time.Duration `envconfig:"BEAUTYLAB_AUTH_RATE_LIMIT_WINDOW" default:"1h"`
	LoginIPLimit    int           `envconfig:"BEAUTYLAB_AUTH_RATE_LIMIT_IP_MAX" default:"10"`
	LoginEmailLimit int           `envconfig:"BEAUTYLAB_AUTH_RATE_LIMIT_EMAIL_MAX" default:"5"`
}

// StorageConfig selects the blob backend. An empty bucket name means the
// local filesystem fallback; callers never pick the backend themselves.
type StorageConfig struct {
	BucketName             string `envconfig:"BEAUTYLAB_GCS_BUCKET_NAME"`
	CredentialsJSON        string `envconfig:"BEAUTYLAB_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"BEAUTYLAB_GOOGLE_APPLICATION_CREDENTIALS"`
	LocalDir               string `envconfig:"BEAUTYLAB_STORAGE_LOCAL_DIR" default:"uploads"`
	LocalBaseURL           string `envconfig:"BEAUTYLAB_STORAGE_LOCAL_BASE_URL" default:"/uploads"`
}

func (s StorageConfig) UseBucket() bool {
	return strings.TrimSpace(s.BucketName) != ""
}

type MediaConfig struct {
	MaxUploadMB      int `envconfig:"BEAUTYLAB_MAX_UPLOAD_MB" default:"10"`
	ImageMaxSize     int `envconfig:"BEAUTYLAB_MEDIA_IMAGE_MAX_SIZE" default:"1200"`
	ThumbnailSize    int `envconfig:"BEAUTYLAB_MEDIA_THUMBNAIL_SIZE" default:"300"`
	ImageQuality     int `envconfig:"BEAUTYLAB_MEDIA_IMAGE_QUALITY" default:"80"`
	ThumbnailQuality int `envconfig:"BEAUTYLAB_MEDIA_THUMBNAIL_QUALITY" default:"60"`
}

// MaxUploadBytes converts the configured megabyte cap into bytes.
func (m MediaConfig) MaxUploadBytes() int64 {
	return int64(m.MaxUploadMB) * 1024 * 1024
}

type CORSConfig struct {
	AllowedOrigin string `envconfig:"BEAUTYLAB_FRONTEND_URL" default:"http://localhost:3000"`
}
