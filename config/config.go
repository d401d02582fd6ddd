package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAPIBaseURL = "https://api.api-ninjas.com"
	DefaultPort       = "8080"
)

// Config is read once at startup and handed to constructors.
type Config struct {
	APIKey         string
	APIBaseURL     string
	Port           string
	GinMode        string
	LogLevel       string
	FetchTimeout   time.Duration
	AllowedOrigins []string
}

// Load reads envFile (dotenv syntax) if it exists and then lets the process
// environment override it. An empty envFile skips the file entirely.
func Load(envFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("API_KEY", "")
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FETCH_TIMEOUT", "0s")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading %s: %w", envFile, err)
			}
		}
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString("FETCH_TIMEOUT")))
	if err != nil {
		return nil, fmt.Errorf("FETCH_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must not be negative, got %s", timeout)
	}

	ginMode := v.GetString("GIN_MODE")
	switch ginMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", ginMode)
	}

	return &Config{
		APIKey:         strings.TrimSpace(v.GetString("API_KEY")),
		APIBaseURL:     strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		Port:           v.GetString("PORT"),
		GinMode:        ginMode,
		LogLevel:       v.GetString("LOG_LEVEL"),
		FetchTimeout:   timeout,
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
