package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"traceback-explainer/config"
)

// Setup applies the configured level and output format to the global zerolog logger.
func Setup(cfg *config.Config) {
	log.Logger = New(cfg.Log, os.Stderr)
	zerolog.SetGlobalLevel(ParseLevel(cfg.Log.Level))
	log.Info().Str("level", zerolog.GlobalLevel().String()).Str("format", cfg.Log.Format).Msg("Logger configured")
}

// New builds a logger writing to w in the configured format.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// ParseLevel falls back to info for empty or unknown levels.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
		return zerolog.InfoLevel
	}
	return lvl
}
