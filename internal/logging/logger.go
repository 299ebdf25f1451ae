// Package logging configures the process-wide zap logger.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/united-manufacturing-hub/umh-utils/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted in LOGGING_LEVEL.
const (
	LevelDebug      = "DEBUG"
	LevelInfo       = "INFO"
	LevelWarn       = "WARN"
	LevelError      = "ERROR"
	LevelProduction = "PRODUCTION"
)

// Format names accepted in LOGGING_FORMAT.
const (
	FormatConsole = "CONSOLE"
	FormatJSON    = "JSON"
)

// ParseLevel converts a level name to a zapcore.Level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New creates a logger writing to stderr with the given level and format.
func New(level, format string) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if strings.ToUpper(format) == FormatJSON {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = timeEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(ParseLevel(level)))
	return zap.New(core, zap.AddCaller())
}

// Initialize builds the logger from LOGGING_LEVEL and LOGGING_FORMAT and
// installs it as the zap global. debug forces the debug level, which turns
// on the validator diagnostics (command, CSS, raw output, exit code).
func Initialize(debug bool) *zap.Logger {
	level, _ := env.GetAsString("LOGGING_LEVEL", false, LevelProduction) //nolint:errcheck
	if debug {
		level = LevelDebug
	}
	format, _ := env.GetAsString("LOGGING_FORMAT", false, FormatConsole) //nolint:errcheck

	logger := New(level, format)
	zap.ReplaceGlobals(logger)
	logger.Debug("Logger initialized", zap.String("level", level), zap.String("format", format))
	return logger
}
