package otel

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/log"

	xlog "github.com/trickstertwo/xlog-otel"
)

// attrSerializer writes fields into an attribute map. Integers that do not
// fit an int64 are stored as their decimal text.
type attrSerializer struct {
	attrs  Attributes
	nested bool
}

var _ xlog.Serializer = (*attrSerializer)(nil)

func (s *attrSerializer) put(k string, v log.Value) error {
	s.attrs[k] = v
	return nil
}

func (s *attrSerializer) EmitArgs(k string, v xlog.Args) error {
	if str, ok := v.AsString(); ok {
		return s.put(k, log.StringValue(str))
	}
	return s.put(k, log.StringValue(v.String()))
}

func (s *attrSerializer) EmitString(k, v string) error  { return s.put(k, log.StringValue(v)) }
func (s *attrSerializer) EmitBool(k string, v bool) error { return s.put(k, log.BoolValue(v)) }

func (s *attrSerializer) EmitInt(k string, v int) error     { return s.put(k, log.IntValue(v)) }
func (s *attrSerializer) EmitInt8(k string, v int8) error   { return s.put(k, log.Int64Value(int64(v))) }
func (s *attrSerializer) EmitInt16(k string, v int16) error { return s.put(k, log.Int64Value(int64(v))) }
func (s *attrSerializer) EmitInt32(k string, v int32) error { return s.put(k, log.Int64Value(int64(v))) }
func (s *attrSerializer) EmitInt64(k string, v int64) error { return s.put(k, log.Int64Value(v)) }

func (s *attrSerializer) EmitInt128(k string, v xlog.Int128) error {
	if i, ok := v.Int64(); ok {
		return s.put(k, log.Int64Value(i))
	}
	return s.EmitArgs(k, xlog.Text(v.String()))
}

func (s *attrSerializer) EmitUint(k string, v uint) error     { return s.EmitUint64(k, uint64(v)) }
func (s *attrSerializer) EmitUint8(k string, v uint8) error   { return s.put(k, log.Int64Value(int64(v))) }
func (s *attrSerializer) EmitUint16(k string, v uint16) error { return s.put(k, log.Int64Value(int64(v))) }
func (s *attrSerializer) EmitUint32(k string, v uint32) error { return s.put(k, log.Int64Value(int64(v))) }

func (s *attrSerializer) EmitUint64(k string, v uint64) error {
	if v <= math.MaxInt64 {
		return s.put(k, log.Int64Value(int64(v)))
	}
	return s.EmitArgs(k, xlog.Text(strconv.FormatUint(v, 10)))
}

func (s *attrSerializer) EmitUint128(k string, v xlog.Uint128) error {
	if i, ok := v.Int64(); ok {
		return s.put(k, log.Int64Value(i))
	}
	return s.EmitArgs(k, xlog.Text(v.String()))
}

func (s *attrSerializer) EmitFloat32(k string, v float32) error {
	return s.put(k, log.Float64Value(float64(v)))
}
func (s *attrSerializer) EmitFloat64(k string, v float64) error {
	return s.put(k, log.Float64Value(v))
}

func (s *attrSerializer) EmitDuration(k string, v time.Duration) error {
	return s.put(k, log.StringValue(v.String()))
}

func (s *attrSerializer) EmitTime(k string, v time.Time) error {
	return s.put(k, log.StringValue(v.Format(time.RFC3339Nano)))
}

func (s *attrSerializer) EmitError(k string, v error) error {
	return s.put(k, log.StringValue(v.Error()))
}

func (s *attrSerializer) EmitBytes(k string, v []byte) error {
	return s.put(k, log.BytesValue(v))
}

func (s *attrSerializer) EmitAny(k string, v any) error {
	if v == nil {
		return s.put(k, log.Value{})
	}
	if !s.nested {
		return s.put(k, log.StringValue(fmt.Sprintf("%+v", v)))
	}
	val, err := nestedValue(v)
	if err != nil {
		return fmt.Errorf("field %q: %w", k, err)
	}
	return s.put(k, val)
}
