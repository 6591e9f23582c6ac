package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFormat represents the logging format.
type LogFormat string

const (
	// FormatConsole indicates human-readable console format.
	FormatConsole LogFormat = "CONSOLE"
	// FormatJSON indicates structured JSON format.
	FormatJSON LogFormat = "JSON"
)

// Component names used with Named.
const (
	ComponentCLI         = "CLI"
	ComponentMinimizer   = "Minimizer"
	ComponentWalkthrough = "Walkthrough"
	ComponentTable       = "Table"
)

// getLogLevel converts a string log level to zapcore.Level, defaulting to info.
func getLogLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// ParseFormat returns the format named by s, or FormatConsole if s names none.
func ParseFormat(s string) LogFormat {
	switch LogFormat(strings.ToUpper(s)) {
	case FormatJSON:
		return FormatJSON
	default:
		return FormatConsole
	}
}

// timeEncoder encodes the time as a human-readable timestamp.
func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New creates a logger writing to stderr with the specified level and format.
func New(logLevel string, logFormat LogFormat) *zap.Logger {
	return NewWithWriter(os.Stderr, logLevel, logFormat)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, logLevel string, logFormat LogFormat) *zap.Logger {
	level := getLogLevel(logLevel)

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
	if logFormat == FormatJSON {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = timeEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core, zap.AddCaller())
}
