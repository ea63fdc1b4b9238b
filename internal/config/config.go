package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	// Booking submission
	BookingEndpoint   string
	BookingResetDelay time.Duration

	// reCAPTCHA verification
	ShowRecaptcha    bool
	RecaptchaSiteKey string
	RecaptchaBaseURL string
	RecaptchaTimeout time.Duration

	// Page content
	ContentFile    string
	RenderCacheTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	CORSAllowedOrigins []string
}

// ErrInsecureEndpoint is returned when the booking endpoint is not https.
var ErrInsecureEndpoint = errors.New("booking endpoint must use https")

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", "json"))),

		BookingEndpoint:   getEnv("BOOKING_ENDPOINT", ""),
		BookingResetDelay: getEnvAsDuration("BOOKING_RESET_DELAY", 5*time.Second),

		ShowRecaptcha:    getEnvAsBool("SHOW_RECAPTCHA", false),
		RecaptchaSiteKey: getEnv("RECAPTCHA_SITE_KEY", ""),
		RecaptchaBaseURL: getEnv("RECAPTCHA_BASE_URL", ""),
		RecaptchaTimeout: getEnvAsDuration("RECAPTCHA_TIMEOUT", 10*time.Second),

		ContentFile:    getEnv("CONTENT_FILE", "content/pages.json"),
		RenderCacheTTL: getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
	}
}

// Validate checks invariants that cannot be defaulted away. The booking
// endpoint is required and must be https; everything else degrades.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BookingEndpoint) == "" {
		return errors.New("BOOKING_ENDPOINT is required")
	}
	u, err := url.Parse(c.BookingEndpoint)
	if err != nil {
		return err
	}
	if u.Scheme != "https" {
		return ErrInsecureEndpoint
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
