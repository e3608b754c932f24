package logger

import (
	"log/slog"
	"strings"
)

// LevelNotice sits between info and warn: normal but significant events.
const LevelNotice = slog.Level(2)

// ParseLevel maps a level name to a slog.Level.
// Accepted names are debug, info, notice, warning (or warn) and error,
// case-insensitive. Unknown names return slog.LevelInfo and false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "notice":
		return LevelNotice, true
	case "warning", "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// replaceLevelName renders LevelNotice as "NOTICE" instead of "INFO+2".
func replaceLevelName(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelNotice {
		a.Value = slog.StringValue("NOTICE")
	}
	return a
}
