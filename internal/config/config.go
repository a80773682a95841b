package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// TEMPSENSOR_SERVER__PORT=9000
const EnvPrefix = "TEMPSENSOR"

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig
	Sensor     SensorConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// Addr returns the host:port the HTTP server binds to
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SensorConfig bounds the simulated temperature values, in degrees Celsius.
// The range is half-open: [MinValue, MaxValue).
type SensorConfig struct {
	MinValue float64 `mapstructure:"min_value"`
	MaxValue float64 `mapstructure:"max_value"`
}

type MonitoringConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	// a missing .env file is the normal case outside local development
	_ = godotenv.Load()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8181)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Sensor defaults
	viper.SetDefault("sensor.min_value", 15.0)
	viper.SetDefault("sensor.max_value", 30.0)

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.namespace", "tempsensor")
}

func validateConfig(config *Config) error {
	if config.Server.Host == "" {
		return fmt.Errorf("server host is required")
	}
	if config.Server.Port < 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", config.Server.Port)
	}
	if config.Sensor.MinValue >= config.Sensor.MaxValue {
		return fmt.Errorf("sensor min_value (%v) must be below max_value (%v)", config.Sensor.MinValue, config.Sensor.MaxValue)
	}
	if config.Monitoring.Namespace == "" {
		return fmt.Errorf("monitoring namespace is required")
	}
	return nil
}
