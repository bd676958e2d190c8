package xlog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Event is a fluent builder (Builder pattern) for a single log entry.
// API: Logger().Info().Str("from", ...).Dur("to", dur).Int("to", v).Msg("state changed")

type Event struct {
	l      *Logger
	level  Level
	fields []Field
	ctx    context.Context
	skip   int
}

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

func getEvent(l *Logger, level Level) *Event {
	ev := eventPool.Get().(*Event)
	ev.l = l
	ev.level = level
	ev.fields = ev.fields[:0]
	return ev
}

func (e *Event) putBack() {
	// allow GC of large backing arrays by capping
	if cap(e.fields) > 128 {
		e.fields = make([]Field, 0, 8)
	}
	e.l = nil
	e.level = 0
	e.ctx = nil
	e.skip = 0
	eventPool.Put(e)
}

// Ctx attaches a context; drains read trace context from it.
func (e *Event) Ctx(ctx context.Context) *Event {
	e.ctx = ctx
	return e
}

// CallerSkip skips n additional frames when resolving the call site.
// Wrappers around Event use it to report their own callers.
func (e *Event) CallerSkip(n int) *Event {
	e.skip += n
	return e
}

// Field builders (zerolog-style)

func (e *Event) Fields(fs ...Field) *Event {
	e.fields = append(e.fields, fs...)
	return e
}

func (e *Event) Str(k, v string) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindString, Str: v})
	return e
}

func (e *Event) Int(k string, v int) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt, Int64: int64(v)})
	return e
}

func (e *Event) Int8(k string, v int8) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt8, Int64: int64(v)})
	return e
}

func (e *Event) Int16(k string, v int16) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt16, Int64: int64(v)})
	return e
}

func (e *Event) Int32(k string, v int32) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt32, Int64: int64(v)})
	return e
}

func (e *Event) Int64(k string, v int64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt64, Int64: v})
	return e
}

func (e *Event) Int128(k string, v Int128) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt128, Any: v})
	return e
}

func (e *Event) Uint(k string, v uint) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint, Uint64: uint64(v)})
	return e
}

func (e *Event) Uint8(k string, v uint8) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint8, Uint64: uint64(v)})
	return e
}

func (e *Event) Uint16(k string, v uint16) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint16, Uint64: uint64(v)})
	return e
}

func (e *Event) Uint32(k string, v uint32) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint32, Uint64: uint64(v)})
	return e
}

func (e *Event) Uint64(k string, v uint64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint64, Uint64: v})
	return e
}

func (e *Event) Uint128(k string, v Uint128) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint128, Any: v})
	return e
}

func (e *Event) Float32(k string, v float32) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindFloat32, Float64: float64(v)})
	return e
}

func (e *Event) Float64(k string, v float64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindFloat64, Float64: v})
	return e
}

func (e *Event) Bool(k string, v bool) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindBool, Bool: v})
	return e
}

func (e *Event) Dur(k string, v time.Duration) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindDuration, Dur: v})
	return e
}

func (e *Event) Time(k string, v time.Time) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindTime, Time: v})
	return e
}

func (e *Event) Bytes(k string, v []byte) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindBytes, Bytes: v})
	return e
}

func (e *Event) Err(err error) *Event {
	if err == nil {
		return e
	}
	e.fields = append(e.fields, Field{K: "error", Kind: KindError, Err: err})
	return e
}

func (e *Event) Stringer(k string, v fmt.Stringer) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindStringer, Any: v})
	return e
}

// Fmt adds a field rendered from a printf template when serialized.
func (e *Event) Fmt(k, format string, args ...any) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindArgs, Any: Args{Format: format, Values: args}})
	return e
}

func (e *Event) Object(k string, m ObjectMarshaler) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindObject, Any: m})
	return e
}

func (e *Event) Any(k string, v any) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindAny, Any: v})
	return e
}

// Msg terminates the builder and emits the event.
func (e *Event) Msg(msg string) {
	e.l.emit(e, Text(msg))
	e.putBack()
}

// Msgf terminates the builder with a message formatted lazily by the drain.
func (e *Event) Msgf(format string, args ...any) {
	e.l.emit(e, Sprintf(format, args...))
	e.putBack()
}
