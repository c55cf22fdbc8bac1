package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Artifacts ArtifactsConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// ArtifactsConfig points at the directory layout the offline training
// pipeline publishes: forecast/, dropout/ and cluster/ subdirectories.
type ArtifactsConfig struct {
	Dir string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ARTIFACTS_DIR", "./artifacts")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Artifacts: ArtifactsConfig{
			Dir: v.GetString("ARTIFACTS_DIR"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
