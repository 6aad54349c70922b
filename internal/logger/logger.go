// Package logger configures the application's structured logging. Output
// goes to stdout and to a size-rotated file under the logs directory.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig controls level, destination and rotation of the app logger.
type LogConfig struct {
	Level      string // trace, debug, info, warn, error
	Dir        string // directory for rotated log files
	FileName   string
	MaxSizeMB  int // rotate after this many megabytes
	MaxBackups int // rotated files to keep
	MaxAgeDays int
	Compress   bool
	JSONFormat bool
}

// DefaultConfig returns the configuration used when Init is called with nil.
// LOG_LEVEL and LOG_DIR environment variables override the defaults.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Dir:        "logs",
		FileName:   "app.log",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
		JSONFormat: false,
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Level = lvl
	}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.Dir = dir
	}
	return cfg
}

var (
	appLogger *logrus.Logger
	initOnce  sync.Once

	auditLogger *logrus.Logger
	auditOnce   sync.Once
)

// Init sets up the shared application logger. Safe to call once at startup;
// pass nil to use DefaultConfig.
func Init(cfg *LogConfig) error {
	var initErr error
	initOnce.Do(func() {
		if cfg == nil {
			cfg = DefaultConfig()
		}

		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			initErr = fmt.Errorf("failed to create logs directory: %w", err)
			return
		}

		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			level = logrus.InfoLevel
		}

		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, cfg.FileName),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}

		log := logrus.New()
		log.SetLevel(level)
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
		if cfg.JSONFormat {
			log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			log.SetFormatter(&logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05",
			})
		}

		appLogger = log

		// Keep the package-level logrus functions aligned with the app
		// logger so stray logrus.Info calls land in the same sinks.
		logrus.SetLevel(level)
		logrus.SetOutput(log.Out)
		logrus.SetFormatter(log.Formatter)
	})
	return initErr
}

// GetAppLogger returns the shared logger, initializing with defaults when
// Init was not called first.
func GetAppLogger() *logrus.Logger {
	if appLogger == nil {
		_ = Init(nil)
	}
	return appLogger
}

// GetAuditLogger returns the audit trail logger. Audit entries go to a
// separate JSON file so they can be shipped independently of app logs.
func GetAuditLogger() *logrus.Logger {
	auditOnce.Do(func() {
		cfg := DefaultConfig()
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "audit.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}

		log := logrus.New()
		log.SetLevel(logrus.InfoLevel)
		log.SetOutput(rotator)
		log.SetFormatter(&logrus.JSONFormatter{})
		auditLogger = log
	})
	return auditLogger
}
