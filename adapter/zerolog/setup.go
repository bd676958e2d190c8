package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	xlog "github.com/trickstertwo/xlog-otel"
)

// Config is an explicit, code-first configuration for zerolog + xlog.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	MinLevel           xlog.Level
	Console            bool   // pretty console output instead of JSON
	ConsoleTimeFormat  string // only used if Console==true; default time.RFC3339Nano
	Caller             bool   // include the xlog call site as "caller"
	TimestampFieldName string // default "ts" (aligns with xlog's authoritative timestamp)
	ErrorHandler       xlog.ErrorHandler
}

// NewAdapter builds the zerolog adapter described by cfg without touching
// the global xlog logger. Useful when teeing with other drains.
func NewAdapter(cfg Config) *Adapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}

	var zl zerolog.Logger
	if cfg.Console {
		// Align console's leading timestamp column with our authoritative ts key
		zerolog.TimestampFieldName = cfg.TimestampFieldName
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		// Hide the caller column when it is never written to avoid "<nil>".
		if !cfg.Caller {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	ad := NewWithOptions(zl, Options{Caller: cfg.Caller})
	ad.SetMinLevel(cfg.MinLevel)
	return ad
}

// Use builds a zerolog-backed xlog logger from Config, wires it as the global
// xlog logger, and returns it. Critically, it binds the logger to xclock.Default()
// so frozen/offset/jitter/calibrated clocks are respected in timestamps.
func Use(cfg Config) *xlog.Logger {
	logger, err := xlog.NewBuilder().
		WithAdapter(NewAdapter(cfg)).
		WithMinLevel(cfg.MinLevel).
		WithClock(xclock.Default()).
		WithErrorHandler(cfg.ErrorHandler).
		Build()
	if err != nil {
		// Build only fails with a nil adapter which cannot happen here.
		panic(err)
	}

	xlog.SetGlobal(logger)
	return logger
}
