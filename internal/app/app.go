package app

import (
	"io"
	"log/slog"

	"github.com/vk/tagcloud/internal/tokenizer"
)

// App owns the logger and separator set used by tag cloud runs.
type App struct {
	logger     *slog.Logger
	separators *tokenizer.Separators
}

// NewApp returns an App that logs to logW according to cfg.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		logger:     logger,
		separators: tokenizer.Default(),
	}
}
