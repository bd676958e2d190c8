package slog

import (
	"log/slog"
	"time"

	xlog "github.com/trickstertwo/xlog-otel"
)

// SlogAdapter adapts xlog to a slog.Handler (Adapter Strategy).
// It builds slog.Records directly: the handler sees xlog's timestamp as
// "ts" and bound fields are pre-bound with Handler.WithAttrs.
type SlogAdapter struct {
	h      slog.Handler
	lv     *slog.LevelVar // optional, enables SetMinLevel
	tsKey  string
	source bool
}

func toSlog(l xlog.Level) slog.Level {
	return slog.Level(l)
}

func New(l *slog.Logger) *SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	return &SlogAdapter{h: l.Handler(), tsKey: "ts"}
}

// NewWithTimestampKey wires a LevelVar for SetMinLevel and overrides the
// timestamp key (default "ts").
func NewWithTimestampKey(l *slog.Logger, lv *slog.LevelVar, tsKey string) *SlogAdapter {
	a := New(l)
	a.lv = lv
	if tsKey != "" {
		a.tsKey = tsKey
	}
	return a
}

// WithSource makes the adapter add the xlog call site under slog.SourceKey.
func (a *SlogAdapter) WithSource() *SlogAdapter {
	a.source = true
	return a
}

func (a *SlogAdapter) With(fs []xlog.Field) xlog.Adapter {
	child := *a
	if len(fs) == 0 {
		return &child
	}
	s := attrSerializer{attrs: make([]slog.Attr, 0, len(fs))}
	// An ObjectMarshaler error only cuts its own group short.
	for i := range fs {
		_ = fs[i].Serialize(&s)
	}
	child.h = a.h.WithAttrs(s.attrs)
	return &child
}

// Log hands one record to the handler and returns the handler's error.
// The record time is left zero so built-in handlers do not add a second
// timestamp next to tsKey.
func (a *SlogAdapter) Log(r *xlog.Record, fields []xlog.Field) error {
	ctx := r.Context()
	lvl := toSlog(r.Level)
	if !a.h.Enabled(ctx, lvl) {
		return nil
	}

	msg, ok := r.Message.AsString()
	if !ok {
		msg = r.Message.String()
	}

	s := attrSerializer{attrs: make([]slog.Attr, 0, len(fields)+2)}
	// Single authoritative timestamp provided by Logger
	s.attrs = append(s.attrs, slog.Time(a.tsKey, r.At))
	if a.source && r.Source.File != "" {
		s.attrs = append(s.attrs, slog.Any(slog.SourceKey, &slog.Source{
			Function: qualified(r.Source),
			File:     r.Source.File,
			Line:     r.Source.Line,
		}))
	}
	if err := xlog.Fields(fields).Serialize(&s); err != nil {
		return err
	}

	rec := slog.NewRecord(time.Time{}, lvl, msg, 0)
	rec.AddAttrs(s.attrs...)
	return a.h.Handle(ctx, rec)
}

func qualified(src xlog.Source) string {
	if src.Function == "" {
		return src.Module
	}
	return src.Module + "." + src.Function
}

// SetMinLevel updates the LevelVar when one was supplied.
func (a *SlogAdapter) SetMinLevel(l xlog.Level) {
	if a.lv != nil {
		a.lv.Set(toSlog(l))
	}
}
