package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "BISTRO"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv  = "BISTRO_APP_ENV"
	EnvDBDSN   = "BISTRO_DB_DSN"
	EnvDBHost  = "BISTRO_DB_HOST"
	EnvDBUser  = "BISTRO_DB_USER"
	EnvDBName  = "BISTRO_DB_NAME"
	EnvJWTKey  = "BISTRO_JWT_SECRET"
	EnvRedis   = "BISTRO_REDIS_URL"
	EnvAppPort = "BISTRO_APP_PORT"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Stripe        StripeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BISTRO_APP_ENV" required:"true"`
	Port         string `envconfig:"BISTRO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BISTRO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BISTRO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BISTRO_DB_DSN"`
	Driver string `envconfig:"BISTRO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BISTRO_DB_HOST"`
	LegacyPort     int    `envconfig:"BISTRO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BISTRO_DB_USER"`
	LegacyPassword string `envconfig:"BISTRO_DB_PASSWORD"`
	LegacyName     string `envconfig:"BISTRO_DB_NAME"`
	LegacySSLMode  string `envconfig:"BISTRO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BISTRO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BISTRO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BISTRO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BISTRO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BISTRO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BISTRO_REDIS_ADDR"`
	Password     string        `envconfig:"BISTRO_REDIS_PASSWORD"`
	DB           int           `envconfig:"BISTRO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BISTRO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BISTRO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BISTRO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BISTRO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BISTRO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"BISTRO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BISTRO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"BISTRO_JWT_EXPIRATION_MINUTES" default:"180"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	TokenWindow        time.Duration `envconfig:"BISTRO_AUTH_RATE_LIMIT_TOKEN_WINDOW" default:"1m"`
	TokenEmailLimit    int           `envconfig:"BISTRO_AUTH_RATE_LIMIT_TOKEN_EMAIL_LIMIT" default:"10"`
	TokenIPLimit       int           `envconfig:"BISTRO_AUTH_RATE_LIMIT_TOKEN_IP_LIMIT" default:"30"`
	RegisterWindow     time.Duration `envconfig:"BISTRO_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"BISTRO_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"BISTRO_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BISTRO_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BISTRO_AUTO_MIGRATE" default:"false"`
}

type StripeConfig struct {
	APIKey   string `envconfig:"BISTRO_STRIPE_API_KEY"`
	Env      string `envconfig:"BISTRO_STRIPE_ENV" default:"test"`
	Currency string `envconfig:"BISTRO_STRIPE_CURRENCY" default:"usd"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
