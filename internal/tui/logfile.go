package tui

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFilePath returns the path to the log file.
// If GQ_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.gq/logs/gq.log
func LogFilePath() string {
	if customPath := os.Getenv("GQ_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gq.log"
	}
	return filepath.Join(homeDir, ".gq", "logs", "gq.log")
}

// newRotatingFile creates the rotating log writer. GQ_LOG_MAX_SIZE (MB),
// GQ_LOG_MAX_BACKUPS and GQ_LOG_MAX_AGE (days) override the defaults.
func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("GQ_LOG_MAX_SIZE", 1, 1),
		MaxBackups: envInt("GQ_LOG_MAX_BACKUPS", 2, 0),
		MaxAge:     envInt("GQ_LOG_MAX_AGE", 30, 1),
		Compress:   false,
	}
}

// envInt reads a non-negative integer from key, falling back to def when
// unset, malformed or below min
func envInt(key string, def, minimum int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < minimum {
		return def
	}
	return v
}
