// Package logger builds configured slog.Logger instances: JSON or text
// format, level, output destination and static attributes, all via
// functional options with production-safe defaults.
package logger
