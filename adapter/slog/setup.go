package slog

import (
	"io"
	"log/slog"
	"os"

	xlog "github.com/trickstertwo/xlog-otel"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xlog.
// One call to Use wires a slog-backed xlog logger and sets it global.
type Config struct {
	Writer             io.Writer            // default: os.Stdout
	MinLevel           xlog.Level           // xlog + slog will both use this
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed via a LevelVar
	TimestampFieldName string               // default "ts" (aligns with xlog's authoritative timestamp)
	Caller             bool                 // add the xlog call site under slog.SourceKey
}

// NewAdapter builds the slog adapter described by cfg.
func NewAdapter(cfg Config) *SlogAdapter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	var opts slog.HandlerOptions
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}

	// Use a LevelVar to allow dynamic SetMinLevel on the adapter.
	lv := new(slog.LevelVar)
	lv.Set(toSlog(cfg.MinLevel))
	opts.Level = lv
	// PCs are never set on records; the adapter writes the source itself.
	opts.AddSource = false

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}

	ad := NewWithTimestampKey(slog.New(h), lv, cfg.TimestampFieldName)
	if cfg.Caller {
		ad.WithSource()
	}
	return ad
}

// Use builds a slog-backed xlog logger from Config, sets it as global, and returns it.
func Use(cfg Config) *xlog.Logger {
	return xlog.UseAdapter(NewAdapter(cfg), cfg.MinLevel)
}

// NewJSONLogger builds an xlog.Logger wired to a slog JSON handler.
func NewJSONLogger(w io.Writer, minLevel xlog.Level, opts *slog.HandlerOptions, observers ...xlog.Observer) (*xlog.Logger, error) {
	return newLogger(Config{Writer: w, MinLevel: minLevel, Format: FormatJSON, HandlerOptions: opts}, observers)
}

// NewTextLogger builds an xlog.Logger wired to a slog text handler.
func NewTextLogger(w io.Writer, minLevel xlog.Level, opts *slog.HandlerOptions, observers ...xlog.Observer) (*xlog.Logger, error) {
	return newLogger(Config{Writer: w, MinLevel: minLevel, Format: FormatText, HandlerOptions: opts}, observers)
}

func newLogger(cfg Config, observers []xlog.Observer) (*xlog.Logger, error) {
	b := xlog.NewBuilder().
		WithAdapter(NewAdapter(cfg)).
		WithMinLevel(cfg.MinLevel)
	for _, o := range observers {
		b = b.AddObserver(o)
	}
	return b.Build()
}
