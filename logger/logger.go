package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kun-ahmadraza/Grocery-store/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *slog.Logger

// Init builds the global logger from config. Call once at startup.
func Init(cfg config.LoggerConfig) error {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var writer io.Writer = os.Stdout
	if cfg.Output == "file" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return err
		}
		writer = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	log = slog.New(handler)
	return nil
}

func get() *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a logger carrying the given fields on every record.
func With(args ...any) *slog.Logger { return get().With(args...) }
