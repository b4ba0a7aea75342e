package motion

import (
	"log/slog"
	"sync/atomic"
)

var (
	logger    atomic.Pointer[slog.Logger]
	debugMode atomic.Bool
)

// SetLogger replaces the logger used for warnings and debug records. A nil
// logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// SetDebugMode enables or disables debug records for timeline lifecycle
// transitions (start, loop, completion). Warnings are always logged.
func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func debugLog(msg string, args ...any) {
	if !debugMode.Load() {
		return
	}
	log().Debug(msg, args...)
}
