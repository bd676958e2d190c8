// Package logr exposes an xlog.Logger as a go-logr/logr.LogSink so code
// written against logr feeds the same drains.
package logr

import (
	"fmt"

	"github.com/go-logr/logr"

	xlog "github.com/trickstertwo/xlog-otel"
)

// NameKey carries the names joined by WithName.
const NameKey = "logger"

// Sink implements logr.LogSink and logr.CallDepthLogSink.
type Sink struct {
	l     *xlog.Logger
	name  string
	depth int
}

var (
	_ logr.LogSink          = (*Sink)(nil)
	_ logr.CallDepthLogSink = (*Sink)(nil)
)

// New returns a logr.Logger backed by l.
func New(l *xlog.Logger) logr.Logger {
	return logr.New(NewSink(l))
}

// NewSink returns the sink without wrapping it.
func NewSink(l *xlog.Logger) *Sink {
	return &Sink{l: l}
}

// Level maps a logr verbosity to an xlog level:
// V(0) is Info, V(1) is Debug and anything higher is Trace.
func Level(v int) xlog.Level {
	switch {
	case v <= 0:
		return xlog.LevelInfo
	case v == 1:
		return xlog.LevelDebug
	default:
		return xlog.LevelTrace
	}
}

func (s *Sink) Init(info logr.RuntimeInfo) {
	s.depth += info.CallDepth
}

func (s *Sink) Enabled(level int) bool {
	return s.l.Enabled(Level(level))
}

func (s *Sink) Info(level int, msg string, kvs ...any) {
	s.emit(s.l.Log(Level(level)), msg, kvs)
}

func (s *Sink) Error(err error, msg string, kvs ...any) {
	s.emit(s.l.Error().Err(err), msg, kvs)
}

// emit must be called directly from Info or Error; the skip accounts for it.
func (s *Sink) emit(e *xlog.Event, msg string, kvs []any) {
	if s.name != "" {
		e = e.Str(NameKey, s.name)
	}
	e.Fields(fields(kvs)...).CallerSkip(s.depth + 2).Msg(msg)
}

func (s *Sink) WithValues(kvs ...any) logr.LogSink {
	child := *s
	child.l = s.l.With(fields(kvs)...)
	return &child
}

func (s *Sink) WithName(name string) logr.LogSink {
	child := *s
	if child.name == "" {
		child.name = name
	} else {
		child.name += "/" + name
	}
	return &child
}

func (s *Sink) WithCallDepth(depth int) logr.LogSink {
	child := *s
	child.depth += depth
	return &child
}

// fields pairs up keys and values. A dangling key gets a placeholder value.
func fields(kvs []any) []xlog.Field {
	if len(kvs) == 0 {
		return nil
	}
	out := make([]xlog.Field, 0, (len(kvs)+1)/2)
	for i := 0; i < len(kvs); i += 2 {
		k, ok := kvs[i].(string)
		if !ok {
			k = fmt.Sprint(kvs[i])
		}
		if i+1 == len(kvs) {
			out = append(out, xlog.FStr(k, "<no-value>"))
			break
		}
		out = append(out, xlog.Of(k, kvs[i+1]))
	}
	return out
}
