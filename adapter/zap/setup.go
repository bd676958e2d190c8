package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xclock"

	xlog "github.com/trickstertwo/xlog-otel"
)

// Config is an explicit, code-first configuration for zap + xlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	MinLevel           xlog.Level
	Console            bool                  // pretty console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	Caller             bool                  // include the xlog call site in logs
	TimestampFieldName string                // default "ts" (aligns with xlog's authoritative timestamp)
	ErrorHandler       xlog.ErrorHandler
}

// NewAdapter builds the zap adapter described by cfg without touching the
// global xlog logger.
func NewAdapter(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Encoder config defaults: do not let zap inject its own time (xlog provides "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder, // used if you yourself add zap.Time fields
			EncodeDuration: zapcore.StringDurationEncoder,
			CallerKey:      "caller",
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	}
	// Ensure zap itself doesn't add an extra time field
	encCfg.TimeKey = ""
	if !cfg.Caller {
		encCfg.CallerKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// Use AtomicLevel so Adapter.SetMinLevel can adjust dynamically.
	al := zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1)) // effectively off for normal levels

	return NewWithTimestampKey(zl, &al, cfg.TimestampFieldName)
}

// Use builds a zap-backed xlog logger from Config,
// wires it as the global xlog logger, and returns it.
// Critically, it binds the logger to xclock.Default() so frozen/offset/jitter/calibrated clocks are respected in timestamps.
func Use(cfg Config) *xlog.Logger {
	logger, err := xlog.NewBuilder().
		WithAdapter(NewAdapter(cfg)).
		WithMinLevel(cfg.MinLevel).
		WithClock(xclock.Default()).
		WithErrorHandler(cfg.ErrorHandler).
		Build()
	if err != nil {
		panic(err)
	}

	xlog.SetGlobal(logger)
	return logger
}
