package slog

import (
	"log/slog"
	"time"

	xlog "github.com/trickstertwo/xlog-otel"
)

// attrSerializer collects slog attributes. Values slog cannot hold exactly
// (128-bit integers, templates) are rendered as strings.
type attrSerializer struct{ attrs []slog.Attr }

func (s *attrSerializer) add(a slog.Attr) error {
	s.attrs = append(s.attrs, a)
	return nil
}

func (s *attrSerializer) EmitArgs(k string, v xlog.Args) error {
	if str, ok := v.AsString(); ok {
		return s.add(slog.String(k, str))
	}
	return s.add(slog.String(k, v.String()))
}
func (s *attrSerializer) EmitString(k, v string) error       { return s.add(slog.String(k, v)) }
func (s *attrSerializer) EmitBool(k string, v bool) error     { return s.add(slog.Bool(k, v)) }
func (s *attrSerializer) EmitInt(k string, v int) error       { return s.add(slog.Int(k, v)) }
func (s *attrSerializer) EmitInt8(k string, v int8) error     { return s.add(slog.Int64(k, int64(v))) }
func (s *attrSerializer) EmitInt16(k string, v int16) error   { return s.add(slog.Int64(k, int64(v))) }
func (s *attrSerializer) EmitInt32(k string, v int32) error   { return s.add(slog.Int64(k, int64(v))) }
func (s *attrSerializer) EmitInt64(k string, v int64) error   { return s.add(slog.Int64(k, v)) }
func (s *attrSerializer) EmitUint(k string, v uint) error     { return s.add(slog.Uint64(k, uint64(v))) }
func (s *attrSerializer) EmitUint8(k string, v uint8) error   { return s.add(slog.Uint64(k, uint64(v))) }
func (s *attrSerializer) EmitUint16(k string, v uint16) error { return s.add(slog.Uint64(k, uint64(v))) }
func (s *attrSerializer) EmitUint32(k string, v uint32) error { return s.add(slog.Uint64(k, uint64(v))) }
func (s *attrSerializer) EmitUint64(k string, v uint64) error { return s.add(slog.Uint64(k, v)) }
func (s *attrSerializer) EmitInt128(k string, v xlog.Int128) error {
	return s.add(slog.String(k, v.String()))
}
func (s *attrSerializer) EmitUint128(k string, v xlog.Uint128) error {
	return s.add(slog.String(k, v.String()))
}
func (s *attrSerializer) EmitFloat32(k string, v float32) error {
	return s.add(slog.Float64(k, float64(v)))
}
func (s *attrSerializer) EmitFloat64(k string, v float64) error { return s.add(slog.Float64(k, v)) }
func (s *attrSerializer) EmitDuration(k string, v time.Duration) error {
	return s.add(slog.Duration(k, v))
}
func (s *attrSerializer) EmitTime(k string, v time.Time) error { return s.add(slog.Time(k, v)) }
func (s *attrSerializer) EmitError(k string, v error) error    { return s.add(slog.Any(k, v)) }
func (s *attrSerializer) EmitBytes(k string, v []byte) error   { return s.add(slog.Any(k, v)) }
func (s *attrSerializer) EmitAny(k string, v any) error        { return s.add(slog.Any(k, v)) }
