package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port            string
	StartupTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string // trace, debug, info, warn, error
	Format string // json or console
}

type CORSConfig struct {
	AllowedOrigins []string
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STARTUP_TIMEOUT", "15s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.StartupTimeout = viper.GetDuration("STARTUP_TIMEOUT")
	config.Server.ShutdownTimeout = viper.GetDuration("SHUTDOWN_TIMEOUT")

	// --- Logging ---
	config.Log.Level = strings.ToLower(viper.GetString("LOG_LEVEL"))
	config.Log.Format = strings.ToLower(viper.GetString("LOG_FORMAT"))

	// --- CORS ---
	config.CORS.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{"*"}
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
