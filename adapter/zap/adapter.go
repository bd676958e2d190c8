package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xlog "github.com/trickstertwo/xlog-otel"
)

// Adapter bridges xlog to go.uber.org/zap with low overhead.
//
// Optimizations:
//   - Pre-binds fields in With() by creating a child zap.Logger with those
//     fields attached, eliminating per-log bound-field loops.
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Guarantees RFC3339Nano "ts" precision by writing it as a string field.
//   - Reports xlog's captured call site as the entry caller, so no
//     AddCallerSkip tuning is needed.
//
// Optional behavior:
//   - SetMinLevel leverages zap.AtomicLevel when provided at construction time
//     to adjust backend filtering to match xlog's MinLevel. If no AtomicLevel
//     is provided, SetMinLevel is a no-op (xlog filtering still applies).
type Adapter struct {
	l     *zap.Logger
	al    *zap.AtomicLevel // optional, enables SetMinLevel
	tsKey string           // timestamp field key; default "ts"
}

// New creates an adapter for the provided zap logger.
func New(l *zap.Logger) *Adapter {
	return NewWithTimestampKey(l, nil, "")
}

// NewWithAtomicLevel creates an adapter and wires a zap.AtomicLevel so
// SetMinLevel can dynamically adjust the backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Adapter {
	return NewWithTimestampKey(l, al, "")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Adapter{l: l, al: al, tsKey: tsKey}
}

// With returns a child adapter by binding fields onto a child zap.Logger.
// This applies the cost once, not per-log call.
func (a *Adapter) With(fs []xlog.Field) xlog.Adapter {
	child := *a
	if len(fs) == 0 {
		return &child
	}
	s := fieldSerializer{out: make([]zap.Field, 0, len(fs))}
	// An ObjectMarshaler error only cuts its own group short.
	for i := range fs {
		_ = fs[i].Serialize(&s)
	}
	child.l = a.l.With(s.out...)
	return &child
}

// Log emits a single entry.
// - Uses xlog's authoritative timestamp as tsKey with RFC3339Nano precision.
// - Maps LevelFatal to Error to avoid os.Exit in library code.
// - A field serialization error drops the entry and is returned.
func (a *Adapter) Log(r *xlog.Record, fields []xlog.Field) error {
	msg, ok := r.Message.AsString()
	if !ok {
		msg = r.Message.String()
	}

	// Fast path: skip if disabled. Avoids building fields.
	ce := a.l.Check(toZapLevel(r.Level), msg)
	if ce == nil {
		return nil
	}
	if r.Source.File != "" {
		ce.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     r.Source.File,
			Line:     r.Source.Line,
			Function: qualified(r.Source),
		}
	}

	// Pre-size for ts + event fields (bound fields are baked into the logger).
	s := fieldSerializer{out: make([]zap.Field, 0, 1+len(fields))}

	// Ensure RFC3339Nano precision regardless of encoder defaults.
	s.out = append(s.out, zap.String(a.tsKey, r.At.UTC().Format(time.RFC3339Nano)))

	if err := xlog.Fields(fields).Serialize(&s); err != nil {
		return err
	}
	ce.Write(s.out...)
	return nil
}

// SetMinLevel updates the backend filter when an AtomicLevel was supplied.
// If not provided, this is a no-op (xlog filtering still applies).
func (a *Adapter) SetMinLevel(l xlog.Level) {
	if a.al == nil {
		return
	}
	a.al.SetLevel(toZapLevel(l))
}

func qualified(src xlog.Source) string {
	if src.Function == "" {
		return src.Module
	}
	return src.Module + "." + src.Function
}

func toZapLevel(l xlog.Level) zapcore.Level {
	switch l.Canonical() {
	case xlog.LevelTrace, xlog.LevelDebug:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case xlog.LevelInfo:
		return zapcore.InfoLevel
	case xlog.LevelWarn:
		return zapcore.WarnLevel
	default:
		// Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}
