package zerolog

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	xlog "github.com/trickstertwo/xlog-otel"
)

// Adapter bridges xlog to rs/zerolog with low overhead.
//
// Optimizations:
//   - Pre-binds fields in With() by creating a child zerolog.Logger with those
//     fields attached, eliminating per-log bound-field loops.
//   - Fast pre-check using GetLevel() to avoid allocating zerolog.Event when
//     the level is disabled.
//   - Uses Logger.WithLevel(...) to avoid a level switch at call sites.
type Adapter struct {
	l    zerolog.Logger
	opts Options
}

// Options tunes the adapter.
type Options struct {
	// Caller writes the xlog call site as "file:line" under
	// zerolog.CallerFieldName.
	Caller bool
}

func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l}
}

func NewWithOptions(l zerolog.Logger, opts Options) *Adapter {
	return &Adapter{l: l, opts: opts}
}

// With returns a child adapter by binding fields onto a child zerolog.Logger.
// This applies the cost once, not per-log call.
func (a *Adapter) With(fs []xlog.Field) xlog.Adapter {
	child := *a
	if len(fs) == 0 {
		return &child
	}
	cs := ctxSerializer{c: a.l.With()}
	// Context binding cannot fail; an ObjectMarshaler error cuts its group short.
	for i := range fs {
		_ = fs[i].Serialize(&cs)
	}
	child.l = cs.c.Logger()
	return &child
}

// Log emits a single entry.
// - Single authoritative timestamp provided by xlog passed as "ts".
// - A field serialization error discards the entry and is returned.
func (a *Adapter) Log(r *xlog.Record, fields []xlog.Field) error {
	zlvl := mapLevel(r.Level)

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < a.l.GetLevel() {
		return nil
	}

	ev := a.l.WithLevel(zlvl)
	if ev == nil {
		return nil
	}
	if r.Ctx != nil {
		ev.Ctx(r.Ctx)
	}

	// Ensure RFC3339Nano precision regardless of zerolog.TimeFieldFormat defaults.
	// Using a string avoids global config changes and keeps output deterministic.
	ev.Str("ts", r.At.UTC().Format(time.RFC3339Nano))
	if a.opts.Caller && r.Source.File != "" {
		ev.Str(zerolog.CallerFieldName, r.Source.File+":"+strconv.Itoa(r.Source.Line))
	}

	es := eventSerializer{e: ev}
	if err := xlog.Fields(fields).Serialize(&es); err != nil {
		ev.Discard()
		return err
	}

	if s, ok := r.Message.AsString(); ok {
		ev.Msg(s)
	} else {
		ev.Msg(r.Message.String())
	}
	return nil
}

// SetMinLevel allows xlog.Builder to propagate min level into zerolog (optional interface).
func (a *Adapter) SetMinLevel(l xlog.Level) {
	a.l = a.l.Level(mapLevel(l))
}

// mapLevel converts xlog.Level to zerolog.Level.
// Fatal stays fatal: WithLevel never exits the process.
func mapLevel(l xlog.Level) zerolog.Level {
	switch l.Canonical() {
	case xlog.LevelTrace:
		return zerolog.TraceLevel
	case xlog.LevelDebug:
		return zerolog.DebugLevel
	case xlog.LevelInfo:
		return zerolog.InfoLevel
	case xlog.LevelWarn:
		return zerolog.WarnLevel
	case xlog.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
