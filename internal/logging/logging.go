// Package logging builds the process loggers: slog for the generator,
// with file, stdout and OTel outputs, and a zerolog adapter for the
// dispatcher.
package logging

import (
	"fmt"
	"path/filepath"
	"time"
)

// LogFilePath is the per-session log file for app under logsDir.
func LogFilePath(logsDir, app string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", app, sessionStart.Format("20060102_150405")),
	)
}
