package zap

import (
	"time"

	"go.uber.org/zap"

	xlog "github.com/trickstertwo/xlog-otel"
)

// fieldSerializer collects zap fields. 128-bit integers become strings.
type fieldSerializer struct{ out []zap.Field }

func (s *fieldSerializer) add(f zap.Field) error {
	s.out = append(s.out, f)
	return nil
}

func (s *fieldSerializer) EmitArgs(k string, v xlog.Args) error {
	if str, ok := v.AsString(); ok {
		return s.add(zap.String(k, str))
	}
	return s.add(zap.String(k, v.String()))
}
func (s *fieldSerializer) EmitString(k, v string) error     { return s.add(zap.String(k, v)) }
func (s *fieldSerializer) EmitBool(k string, v bool) error   { return s.add(zap.Bool(k, v)) }
func (s *fieldSerializer) EmitInt(k string, v int) error     { return s.add(zap.Int(k, v)) }
func (s *fieldSerializer) EmitInt8(k string, v int8) error   { return s.add(zap.Int8(k, v)) }
func (s *fieldSerializer) EmitInt16(k string, v int16) error { return s.add(zap.Int16(k, v)) }
func (s *fieldSerializer) EmitInt32(k string, v int32) error { return s.add(zap.Int32(k, v)) }
func (s *fieldSerializer) EmitInt64(k string, v int64) error { return s.add(zap.Int64(k, v)) }
func (s *fieldSerializer) EmitInt128(k string, v xlog.Int128) error {
	return s.add(zap.Stringer(k, v))
}
func (s *fieldSerializer) EmitUint(k string, v uint) error     { return s.add(zap.Uint(k, v)) }
func (s *fieldSerializer) EmitUint8(k string, v uint8) error   { return s.add(zap.Uint8(k, v)) }
func (s *fieldSerializer) EmitUint16(k string, v uint16) error { return s.add(zap.Uint16(k, v)) }
func (s *fieldSerializer) EmitUint32(k string, v uint32) error { return s.add(zap.Uint32(k, v)) }
func (s *fieldSerializer) EmitUint64(k string, v uint64) error { return s.add(zap.Uint64(k, v)) }
func (s *fieldSerializer) EmitUint128(k string, v xlog.Uint128) error {
	return s.add(zap.Stringer(k, v))
}
func (s *fieldSerializer) EmitFloat32(k string, v float32) error { return s.add(zap.Float32(k, v)) }
func (s *fieldSerializer) EmitFloat64(k string, v float64) error { return s.add(zap.Float64(k, v)) }

// EmitDuration leaves string vs numeric to the encoder.
func (s *fieldSerializer) EmitDuration(k string, v time.Duration) error {
	return s.add(zap.Duration(k, v))
}
func (s *fieldSerializer) EmitTime(k string, v time.Time) error { return s.add(zap.Time(k, v)) }
func (s *fieldSerializer) EmitError(k string, v error) error {
	if k == "" || k == "error" {
		return s.add(zap.Error(v))
	}
	return s.add(zap.NamedError(k, v))
}
func (s *fieldSerializer) EmitBytes(k string, v []byte) error { return s.add(zap.ByteString(k, v)) }
func (s *fieldSerializer) EmitAny(k string, v any) error      { return s.add(zap.Any(k, v)) }
