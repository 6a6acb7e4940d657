package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv overrides the log level when set (debug, info, warn, error).
const LevelEnv = "LIGHTLAB_LOG_LEVEL"

// Log is the process wide logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

var once sync.Once

// Init builds the logger at info level, or at the level named by LevelEnv.
// Calling it more than once is harmless.
func Init() {
	once.Do(func() {
		level := os.Getenv(LevelEnv)
		if level == "" {
			level = "info"
		}
		build(level)
	})
}

// InitWithLevel rebuilds the logger at the given level regardless of Init.
func InitWithLevel(level string) {
	once.Do(func() {})
	build(level)
}

func build(level string) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = zapcore.InfoLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := config.Build()
	if err != nil {
		Log = zap.NewNop()
		return
	}
	Log = l
}

// Sync flushes buffered log entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
