package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/concily/reconciliation/internal/pkg/models"
)

// AppLogger is the application logger with structured JSON output
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger from configuration
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:   log,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(); err != nil {
			return nil, fmt.Errorf("failed to setup log file: %w", err)
		}
	} else {
		log.SetOutput(os.Stdout)
	}

	return appLogger, nil
}

func (l *AppLogger) setupFileOutput() error {
	dir := filepath.Dir(l.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", l.filePath, err)
	}

	l.file = file
	l.SetOutput(file)
	return nil
}

// Close releases the log file when file output is configured
func (l *AppLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
