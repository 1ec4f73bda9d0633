package tui

import (
	"os"
	"path/filepath"
	"strings"

	"treedrag.dev/treedrag/internal/config"
)

// LogFilePath returns the log file to write, or "" when file logging is off.
// A leading ~/ in the configured path is expanded to the home directory.
func LogFilePath(cfg config.Log) string {
	path := cfg.File
	if path == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return rest
		}
		return filepath.Join(homeDir, rest)
	}
	return path
}
