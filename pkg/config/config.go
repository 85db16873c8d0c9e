package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups application configuration (read via Viper from env and
// optionally from file).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Store    StoreConfig
	Business BusinessConfig
	DevStore DevStoreConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig settings for the API server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address, e.g. "0.0.0.0:8080".
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig settings for the backing record store.
type StoreConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout returns the request timeout as a duration.
func (c StoreConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BusinessConfig letterhead identity printed on invoices.
type BusinessConfig struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

// DevStoreConfig settings for the standalone development record store.
type DevStoreConfig struct {
	Port   int
	DBFile string
}

// Load reads configuration from environment variables (and optionally
// from file). Env vars take priority. Expected names: APP_ENV,
// HTTP_PORT, STORE_BASE_URL, BUSINESS_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "invoicing"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			BaseURL:        getString(v, "STORE_BASE_URL", "http://localhost:3000"),
			TimeoutSeconds: getInt(v, "STORE_TIMEOUT_SECONDS", 10),
		},
		Business: BusinessConfig{
			Name:    getString(v, "BUSINESS_NAME", "McProperty Improvements"),
			Email:   getString(v, "BUSINESS_EMAIL", "mcpropertiesia@gmail.com"),
			Address: getString(v, "BUSINESS_ADDRESS", "2743 Fair Ln, Denison, IA"),
			Phone:   getString(v, "BUSINESS_PHONE", "712-210-2950"),
		},
		DevStore: DevStoreConfig{
			Port:   getInt(v, "STORE_PORT", 3000),
			DBFile: getString(v, "STORE_DB_FILE", "db.json"),
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
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
