package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings, loaded from environment variables.
type Config struct {
	AppPort     string
	Database    DatabaseConfig
	RabbitMQURL string
	Tracking    TrackingConfig
}

// DatabaseConfig selects the GORM driver and its DSN.
type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// TrackingConfig holds the courier API endpoint and its credential pair.
// The token/key have no defaults; they must come from the environment.
type TrackingConfig struct {
	URL      string
	AppToken string
	AppKey   string
	Timeout  time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "orders.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("TRACK_API_URL", "https://api.track718.net/v2/track/query")
	viper.SetDefault("TRACK_APP_TOKEN", "")
	viper.SetDefault("TRACK_APP_KEY", "")
	viper.SetDefault("TRACK_HTTP_TIMEOUT", 15*time.Second)
	viper.AutomaticEnv()

	return Config{
		AppPort: viper.GetString("APP_PORT"),
		Database: DatabaseConfig{
			Driver: viper.GetString("DATABASE_DRIVER"),
			DSN:    viper.GetString("DATABASE_DSN"),
		},
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		Tracking: TrackingConfig{
			URL:      viper.GetString("TRACK_API_URL"),
			AppToken: viper.GetString("TRACK_APP_TOKEN"),
			AppKey:   viper.GetString("TRACK_APP_KEY"),
			Timeout:  viper.GetDuration("TRACK_HTTP_TIMEOUT"),
		},
	}
}
