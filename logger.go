package xlog

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// callerSkip is the number of frames between CallerSource and the user's
// call to Event.Msg/Msgf: emit, then Msg.
const callerSkip = 2

// ErrorHandler receives errors reported by the Adapter.
type ErrorHandler func(error)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "xlog error: %v\n", err) }

type Logger struct {
	adapter    Adapter
	minLevel   Level
	baseFields []Field
	clock      xclock.Clock // nil: xclock.Now()
	onError    ErrorHandler

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		adapter:  cfg.Adapter,
		minLevel: cfg.MinLevel,
		clock:    cfg.Clock,
		onError:  cfg.ErrorHandler,
	}
	if l.onError == nil {
		l.onError = defaultErrorHandler
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("xlog: global logger not set. Build one and call xlog.SetGlobal(...)")
	}
	return l
}

// Enabled reports whether logs at 'level' would be emitted by this logger.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel
}

// Level entry points returning fluent builders.

func (l *Logger) Trace() *Event { return getEvent(l, LevelTrace) }
func (l *Logger) Debug() *Event { return getEvent(l, LevelDebug) }
func (l *Logger) Info() *Event  { return getEvent(l, LevelInfo) }
func (l *Logger) Warn() *Event  { return getEvent(l, LevelWarn) }
func (l *Logger) Error() *Event { return getEvent(l, LevelError) }
func (l *Logger) Fatal() *Event { return getEvent(l, LevelFatal) }

// Log returns a builder for an arbitrary level.
func (l *Logger) Log(level Level) *Event { return getEvent(l, level) }

// With returns a child logger with bound fields.
func (l *Logger) With(fs ...Field) *Logger {
	child := &Logger{
		adapter:    l.adapter.With(fs),
		minLevel:   l.minLevel,
		baseFields: append(copyFields(nil, l.baseFields), fs...),
		clock:      l.clock,
		onError:    l.onError,
	}
	// Inherit a snapshot of observers.
	child.observers.Store(l.snapshotObservers())
	return child
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// emit must be called directly from Event.Msg/Msgf; see callerSkip.
func (l *Logger) emit(e *Event, msg Args) {
	if e.level < l.minLevel {
		return
	}
	// Single authoritative timestamp
	r := Record{
		Level:   e.level,
		Message: msg,
		Source:  CallerSource(callerSkip + e.skip),
		At:      l.now(),
		Ctx:     e.ctx,
	}

	// Adapter handles bound fields internally; pass only event fields.
	if err := l.adapter.Log(&r, e.fields); err != nil {
		l.onError(err)
	}

	// Observers see combined fields: base + event.
	v := l.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return
	}

	merged := make([]Field, 0, len(l.baseFields)+len(e.fields))
	if len(l.baseFields) > 0 {
		merged = append(merged, l.baseFields...)
	}
	if len(e.fields) > 0 {
		merged = append(merged, e.fields...)
	}

	entry := Entry{
		At:      r.At,
		Level:   r.Level,
		Message: msg.String(),
		Source:  r.Source,
		Fields:  merged,
	}

	for _, o := range obs {
		o.OnLog(entry)
	}
}

func copyFields(dst, src []Field) []Field {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}
