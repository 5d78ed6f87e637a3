package app

import (
	"github.com/saradorri/predictor/internal/config"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	file := a.config.Log.File
	return logger.NewLoggerWithFile(config.GetEnvironment(), a.config.Log.Level, logger.FileOptions{
		Path:       file.Path,
		MaxSizeMB:  file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAgeDays: file.MaxAgeDays,
		Compress:   file.Compress,
	})
}
