package zerolog

import (
	"time"

	"github.com/rs/zerolog"

	xlog "github.com/trickstertwo/xlog-otel"
)

// eventSerializer writes fields onto a zerolog.Event.
// 128-bit integers and templates are written as strings.
type eventSerializer struct{ e *zerolog.Event }

func (s *eventSerializer) EmitArgs(k string, v xlog.Args) error {
	if str, ok := v.AsString(); ok {
		s.e.Str(k, str)
	} else {
		s.e.Str(k, v.String())
	}
	return nil
}
func (s *eventSerializer) EmitString(k, v string) error            { s.e.Str(k, v); return nil }
func (s *eventSerializer) EmitBool(k string, v bool) error          { s.e.Bool(k, v); return nil }
func (s *eventSerializer) EmitInt(k string, v int) error            { s.e.Int(k, v); return nil }
func (s *eventSerializer) EmitInt8(k string, v int8) error          { s.e.Int8(k, v); return nil }
func (s *eventSerializer) EmitInt16(k string, v int16) error        { s.e.Int16(k, v); return nil }
func (s *eventSerializer) EmitInt32(k string, v int32) error        { s.e.Int32(k, v); return nil }
func (s *eventSerializer) EmitInt64(k string, v int64) error        { s.e.Int64(k, v); return nil }
func (s *eventSerializer) EmitInt128(k string, v xlog.Int128) error { s.e.Str(k, v.String()); return nil }
func (s *eventSerializer) EmitUint(k string, v uint) error          { s.e.Uint(k, v); return nil }
func (s *eventSerializer) EmitUint8(k string, v uint8) error        { s.e.Uint8(k, v); return nil }
func (s *eventSerializer) EmitUint16(k string, v uint16) error      { s.e.Uint16(k, v); return nil }
func (s *eventSerializer) EmitUint32(k string, v uint32) error      { s.e.Uint32(k, v); return nil }
func (s *eventSerializer) EmitUint64(k string, v uint64) error      { s.e.Uint64(k, v); return nil }
func (s *eventSerializer) EmitUint128(k string, v xlog.Uint128) error {
	s.e.Str(k, v.String())
	return nil
}
func (s *eventSerializer) EmitFloat32(k string, v float32) error { s.e.Float32(k, v); return nil }
func (s *eventSerializer) EmitFloat64(k string, v float64) error { s.e.Float64(k, v); return nil }
func (s *eventSerializer) EmitDuration(k string, v time.Duration) error {
	s.e.Dur(k, v)
	return nil
}
func (s *eventSerializer) EmitTime(k string, v time.Time) error { s.e.Time(k, v); return nil }
func (s *eventSerializer) EmitError(k string, v error) error {
	if k == "" || k == zerolog.ErrorFieldName {
		s.e.Err(v)
	} else {
		s.e.AnErr(k, v)
	}
	return nil
}
func (s *eventSerializer) EmitBytes(k string, v []byte) error { s.e.Bytes(k, v); return nil }
func (s *eventSerializer) EmitAny(k string, v any) error      { s.e.Interface(k, v); return nil }

// ctxSerializer binds fields to a zerolog.Context (used by With()).
type ctxSerializer struct{ c zerolog.Context }

func (s *ctxSerializer) EmitArgs(k string, v xlog.Args) error {
	s.c = s.c.Str(k, v.String())
	return nil
}
func (s *ctxSerializer) EmitString(k, v string) error            { s.c = s.c.Str(k, v); return nil }
func (s *ctxSerializer) EmitBool(k string, v bool) error          { s.c = s.c.Bool(k, v); return nil }
func (s *ctxSerializer) EmitInt(k string, v int) error            { s.c = s.c.Int(k, v); return nil }
func (s *ctxSerializer) EmitInt8(k string, v int8) error          { s.c = s.c.Int8(k, v); return nil }
func (s *ctxSerializer) EmitInt16(k string, v int16) error        { s.c = s.c.Int16(k, v); return nil }
func (s *ctxSerializer) EmitInt32(k string, v int32) error        { s.c = s.c.Int32(k, v); return nil }
func (s *ctxSerializer) EmitInt64(k string, v int64) error        { s.c = s.c.Int64(k, v); return nil }
func (s *ctxSerializer) EmitInt128(k string, v xlog.Int128) error { s.c = s.c.Str(k, v.String()); return nil }
func (s *ctxSerializer) EmitUint(k string, v uint) error          { s.c = s.c.Uint(k, v); return nil }
func (s *ctxSerializer) EmitUint8(k string, v uint8) error        { s.c = s.c.Uint8(k, v); return nil }
func (s *ctxSerializer) EmitUint16(k string, v uint16) error      { s.c = s.c.Uint16(k, v); return nil }
func (s *ctxSerializer) EmitUint32(k string, v uint32) error      { s.c = s.c.Uint32(k, v); return nil }
func (s *ctxSerializer) EmitUint64(k string, v uint64) error      { s.c = s.c.Uint64(k, v); return nil }
func (s *ctxSerializer) EmitUint128(k string, v xlog.Uint128) error {
	s.c = s.c.Str(k, v.String())
	return nil
}
func (s *ctxSerializer) EmitFloat32(k string, v float32) error { s.c = s.c.Float32(k, v); return nil }
func (s *ctxSerializer) EmitFloat64(k string, v float64) error { s.c = s.c.Float64(k, v); return nil }
func (s *ctxSerializer) EmitDuration(k string, v time.Duration) error {
	s.c = s.c.Dur(k, v)
	return nil
}
func (s *ctxSerializer) EmitTime(k string, v time.Time) error { s.c = s.c.Time(k, v); return nil }
func (s *ctxSerializer) EmitError(k string, v error) error {
	if k == "" || k == zerolog.ErrorFieldName {
		s.c = s.c.Err(v)
	} else {
		s.c = s.c.AnErr(k, v)
	}
	return nil
}
func (s *ctxSerializer) EmitBytes(k string, v []byte) error { s.c = s.c.Bytes(k, v); return nil }
func (s *ctxSerializer) EmitAny(k string, v any) error      { s.c = s.c.Interface(k, v); return nil }
