// Package logger provides the global structured logger for quanta.
//
// The engine itself accepts an injected *zap.SugaredLogger so library
// consumers can bring their own; this package exists for the CLI and for
// tests that want the shared instance.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance
	Logger *zap.SugaredLogger
	// JSONOutput tracks whether JSON output is enabled
	JSONOutput bool
)

func init() {
	// Safe no-op logger at package load time so the logger can be used
	// before Initialize() is called
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger based on the JSON output preference
func Initialize(jsonOutput bool) error {
	return InitializeWithVerbosity(jsonOutput, VerbosityUser)
}

// InitializeWithVerbosity sets up the global logger with a CLI verbosity
// level (-v flag count) controlling the minimum log level.
func InitializeWithVerbosity(jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput

	level := VerbosityToLevel(verbosity)

	if jsonOutput {
		// JSON structured output for machine consumption
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err := config.Build()
		if err != nil {
			return err
		}
		Logger = zapLogger.Sugar()
		return nil
	}

	// Human-readable console output
	encConfig := zap.NewDevelopmentEncoderConfig()
	encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encConfig.TimeKey = "" // calm output: no timestamps on the console
	zapLogger := zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	)

	Logger = zapLogger.Sugar()
	return nil
}
