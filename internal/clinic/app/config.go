package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/clinic/pkg/jwtx"
)

// OTP cache backends.
const (
	OTPBackendMemory = "memory"
	OTPBackendRedis  = "redis"
)

type Config struct {
	Env       string `env:"ENV" envDefault:"dev"`          // dev, staging, prod
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`   // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`  // json, text
	Port      int    `env:"PORT" envDefault:"8080"`

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"clinic.db"`
	PepperFile   string `env:"PEPPER_FILE" envDefault:"pepper"`

	// Token signing. Both secrets are required and must differ.
	Issuer        string        `env:"JWT_ISSUER" envDefault:"clinic"`
	AccessSecret  string        `env:"ACCESS_TOKEN_KEY"`
	RefreshSecret string        `env:"REFRESH_TOKEN_KEY"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TIME" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TIME" envDefault:"168h"`
	RefreshRotate bool          `env:"REFRESH_ROTATION" envDefault:"false"`

	// BootstrapToken gates POST /admin/superadmin. Bootstrap is disabled when empty.
	BootstrapToken string `env:"BOOTSTRAP_TOKEN"`

	OTPBackend string        `env:"OTP_BACKEND" envDefault:"memory"`
	OTPTTL     time.Duration `env:"OTP_TTL" envDefault:"3m"`
	OTPDigits  int           `env:"OTP_DIGITS" envDefault:"6"`
	OTPEcho    bool          `env:"OTP_ECHO" envDefault:"true"`
	// OTPMaxAttempts is how many wrong codes burn an issued code.
	OTPMaxAttempts int    `env:"OTP_MAX_ATTEMPTS" envDefault:"5"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass      string `env:"REDIS_PASSWORD"`

	// TrustedProxies lists proxy CIDRs or addresses whose X-Forwarded-For
	// is believed by the rate limiter. Empty trusts no proxy.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"true"`
	CookieSameSite string `env:"COOKIE_SAMESITE" envDefault:"lax"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1m"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	return ParseConfig()
}

// ParseConfig reads the process environment only.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch {
	case c.AccessSecret == "" || c.RefreshSecret == "":
		errs = append(errs, errors.New("ACCESS_TOKEN_KEY and REFRESH_TOKEN_KEY are required"))
	case c.AccessSecret == c.RefreshSecret:
		errs = append(errs, errors.New("ACCESS_TOKEN_KEY and REFRESH_TOKEN_KEY must differ"))
	}
	if c.AccessSecret != "" && len(c.AccessSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_KEY must be at least %d characters", jwtx.MinSecretLength))
	}
	if c.RefreshSecret != "" && len(c.RefreshSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("REFRESH_TOKEN_KEY must be at least %d characters", jwtx.MinSecretLength))
	}

	if c.AccessTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TIME must be positive"))
	}
	if c.RefreshTTL <= c.AccessTTL {
		errs = append(errs, errors.New("REFRESH_TOKEN_TIME must be longer than ACCESS_TOKEN_TIME"))
	}

	switch c.OTPBackend {
	case OTPBackendMemory:
	case OTPBackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis OTP backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown OTP_BACKEND %q", c.OTPBackend))
	}
	if c.OTPTTL <= 0 {
		errs = append(errs, errors.New("OTP_TTL must be positive"))
	}
	if c.OTPDigits < 4 || c.OTPDigits > 8 {
		errs = append(errs, errors.New("OTP_DIGITS must be between 4 and 8"))
	}
	if c.OTPMaxAttempts < 1 {
		errs = append(errs, errors.New("OTP_MAX_ATTEMPTS must be at least 1"))
	}

	switch strings.ToLower(c.CookieSameSite) {
	case "lax", "strict", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown COOKIE_SAMESITE %q", c.CookieSameSite))
	}

	return errors.Join(errs...)
}
