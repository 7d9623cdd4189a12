// Package logger holds the process-wide zap logger.
//
// Only transports and the CLI log. The core packages return classified
// errors and leave reporting to their callers.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

func init() {
	// Safe no-op logger until Initialize is called
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger.
//
// jsonOutput selects zap's production JSON encoder; otherwise a console
// encoder is used. verbose lowers the level from info to debug. Logs go to
// stderr so command output on stdout stays machine-readable.
func Initialize(jsonOutput, verbose bool) error {
	zapLogger, err := build(jsonOutput, verbose)
	if err != nil {
		return err
	}

	JSONOutput = jsonOutput
	Logger = zapLogger.Sugar()
	return nil
}

func build(jsonOutput, verbose bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		return config.Build()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	return zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		),
	), nil
}

// Component returns a named child of the global logger.
func Component(name string) *zap.SugaredLogger {
	return Logger.Named(name).With(FieldComponent, name)
}

// Sync flushes buffered log entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}
