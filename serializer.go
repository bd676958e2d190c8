package xlog

import (
	"fmt"
	"reflect"
	"time"
)

// Serializer receives fields one typed value at a time (Visitor pattern).
// Drains implement it to convert fields into their own representation.
// A returned error aborts serialization of the remaining fields.
type Serializer interface {
	EmitArgs(key string, v Args) error
	EmitString(key, v string) error
	EmitBool(key string, v bool) error

	EmitInt(key string, v int) error
	EmitInt8(key string, v int8) error
	EmitInt16(key string, v int16) error
	EmitInt32(key string, v int32) error
	EmitInt64(key string, v int64) error
	EmitInt128(key string, v Int128) error

	EmitUint(key string, v uint) error
	EmitUint8(key string, v uint8) error
	EmitUint16(key string, v uint16) error
	EmitUint32(key string, v uint32) error
	EmitUint64(key string, v uint64) error
	EmitUint128(key string, v Uint128) error

	EmitFloat32(key string, v float32) error
	EmitFloat64(key string, v float64) error

	EmitDuration(key string, v time.Duration) error
	EmitTime(key string, v time.Time) error
	EmitError(key string, v error) error
	EmitBytes(key string, v []byte) error

	// EmitAny receives values without a dedicated kind.
	EmitAny(key string, v any) error
}

// ObjectMarshaler lets a value write its own fields when serialized.
// Errors surface to the drain and abort the log call.
type ObjectMarshaler interface {
	MarshalLogObject(s Serializer) error
}

// ObjectMarshalerFunc adapts a function to ObjectMarshaler.
type ObjectMarshalerFunc func(Serializer) error

func (f ObjectMarshalerFunc) MarshalLogObject(s Serializer) error { return f(s) }

// Fields is an ordered field list.
type Fields []Field

// Serialize feeds every field to s in order, stopping at the first error.
func (fs Fields) Serialize(s Serializer) error {
	for i := range fs {
		if err := fs[i].Serialize(s); err != nil {
			return err
		}
	}
	return nil
}

// Serialize dispatches the field to the Serializer method for its kind.
func (f *Field) Serialize(s Serializer) error {
	switch f.Kind {
	case KindString:
		return s.EmitString(f.K, f.Str)
	case KindBool:
		return s.EmitBool(f.K, f.Bool)
	case KindInt:
		return s.EmitInt(f.K, int(f.Int64))
	case KindInt8:
		return s.EmitInt8(f.K, int8(f.Int64))
	case KindInt16:
		return s.EmitInt16(f.K, int16(f.Int64))
	case KindInt32:
		return s.EmitInt32(f.K, int32(f.Int64))
	case KindInt64:
		return s.EmitInt64(f.K, f.Int64)
	case KindUint:
		return s.EmitUint(f.K, uint(f.Uint64))
	case KindUint8:
		return s.EmitUint8(f.K, uint8(f.Uint64))
	case KindUint16:
		return s.EmitUint16(f.K, uint16(f.Uint64))
	case KindUint32:
		return s.EmitUint32(f.K, uint32(f.Uint64))
	case KindUint64:
		return s.EmitUint64(f.K, f.Uint64)
	case KindFloat32:
		return s.EmitFloat32(f.K, float32(f.Float64))
	case KindFloat64:
		return s.EmitFloat64(f.K, f.Float64)
	case KindDuration:
		return s.EmitDuration(f.K, f.Dur)
	case KindTime:
		return s.EmitTime(f.K, f.Time)
	case KindError:
		if f.Err == nil {
			return nil
		}
		return s.EmitError(f.K, f.Err)
	case KindBytes:
		return s.EmitBytes(f.K, f.Bytes)
	case KindInt128:
		if v, ok := f.Any.(Int128); ok {
			return s.EmitInt128(f.K, v)
		}
	case KindUint128:
		if v, ok := f.Any.(Uint128); ok {
			return s.EmitUint128(f.K, v)
		}
	case KindArgs:
		if v, ok := f.Any.(Args); ok {
			return s.EmitArgs(f.K, v)
		}
	case KindStringer:
		// fmt guards against nil receivers and panicking String methods.
		return s.EmitArgs(f.K, Sprintf("%v", f.Any))
	case KindObject:
		m, ok := f.Any.(ObjectMarshaler)
		if !ok || m == nil {
			return nil
		}
		return marshalObject(f.K, m, s)
	}
	return s.EmitAny(f.K, f.Any)
}

// marshalObject runs m with its keys namespaced under k. A panic in
// MarshalLogObject is reported under k as text, the way fmt reports
// panicking String methods: "<nil>" for a nil pointer receiver.
func marshalObject(k string, m ObjectMarshaler, s Serializer) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
			err = s.EmitString(k, "<nil>")
			return
		}
		err = s.EmitString(k, fmt.Sprintf("%%!PANIC=MarshalLogObject: %v", p))
	}()
	if k == "" {
		return m.MarshalLogObject(s)
	}
	return m.MarshalLogObject(&prefixSerializer{prefix: k + ".", s: s})
}

// prefixSerializer namespaces the keys written by an ObjectMarshaler.
type prefixSerializer struct {
	prefix string
	s      Serializer
}

func (p *prefixSerializer) key(k string) string { return p.prefix + k }

func (p *prefixSerializer) EmitArgs(k string, v Args) error      { return p.s.EmitArgs(p.key(k), v) }
func (p *prefixSerializer) EmitString(k, v string) error         { return p.s.EmitString(p.key(k), v) }
func (p *prefixSerializer) EmitBool(k string, v bool) error      { return p.s.EmitBool(p.key(k), v) }
func (p *prefixSerializer) EmitInt(k string, v int) error        { return p.s.EmitInt(p.key(k), v) }
func (p *prefixSerializer) EmitInt8(k string, v int8) error      { return p.s.EmitInt8(p.key(k), v) }
func (p *prefixSerializer) EmitInt16(k string, v int16) error    { return p.s.EmitInt16(p.key(k), v) }
func (p *prefixSerializer) EmitInt32(k string, v int32) error    { return p.s.EmitInt32(p.key(k), v) }
func (p *prefixSerializer) EmitInt64(k string, v int64) error    { return p.s.EmitInt64(p.key(k), v) }
func (p *prefixSerializer) EmitInt128(k string, v Int128) error  { return p.s.EmitInt128(p.key(k), v) }
func (p *prefixSerializer) EmitUint(k string, v uint) error      { return p.s.EmitUint(p.key(k), v) }
func (p *prefixSerializer) EmitUint8(k string, v uint8) error    { return p.s.EmitUint8(p.key(k), v) }
func (p *prefixSerializer) EmitUint16(k string, v uint16) error  { return p.s.EmitUint16(p.key(k), v) }
func (p *prefixSerializer) EmitUint32(k string, v uint32) error  { return p.s.EmitUint32(p.key(k), v) }
func (p *prefixSerializer) EmitUint64(k string, v uint64) error  { return p.s.EmitUint64(p.key(k), v) }
func (p *prefixSerializer) EmitUint128(k string, v Uint128) error { return p.s.EmitUint128(p.key(k), v) }
func (p *prefixSerializer) EmitFloat32(k string, v float32) error { return p.s.EmitFloat32(p.key(k), v) }
func (p *prefixSerializer) EmitFloat64(k string, v float64) error { return p.s.EmitFloat64(p.key(k), v) }
func (p *prefixSerializer) EmitDuration(k string, v time.Duration) error {
	return p.s.EmitDuration(p.key(k), v)
}
func (p *prefixSerializer) EmitTime(k string, v time.Time) error { return p.s.EmitTime(p.key(k), v) }
func (p *prefixSerializer) EmitError(k string, v error) error    { return p.s.EmitError(p.key(k), v) }
func (p *prefixSerializer) EmitBytes(k string, v []byte) error   { return p.s.EmitBytes(p.key(k), v) }
func (p *prefixSerializer) EmitAny(k string, v any) error        { return p.s.EmitAny(p.key(k), v) }
