package xlog

import (
	"fmt"
	"time"
)

// Kind identifies the concrete type stored in a Field.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindDuration
	KindTime
	KindError
	KindBytes
	KindAny
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindFloat32
	KindInt128
	KindUint128
	KindArgs
	KindStringer
	KindObject
)

// Field is a compact, reflection-free union for structured fields.
//
// Signed integers of every width are stored in Int64, unsigned in Uint64 and
// float32 in Float64; Kind records the source width. 128-bit values, Args,
// Stringers and ObjectMarshalers are carried in Any.
type Field struct {
	K       string
	Kind    Kind
	Str     string
	Int64   int64
	Uint64  uint64
	Float64 float64
	Bool    bool
	Dur     time.Duration
	Time    time.Time
	Err     error
	Bytes   []byte
	Any     any
}

func FStr(k, v string) Field               { return Field{K: k, Kind: KindString, Str: v} }
func FInt(k string, v int) Field           { return Field{K: k, Kind: KindInt, Int64: int64(v)} }
func FInt8(k string, v int8) Field         { return Field{K: k, Kind: KindInt8, Int64: int64(v)} }
func FInt16(k string, v int16) Field       { return Field{K: k, Kind: KindInt16, Int64: int64(v)} }
func FInt32(k string, v int32) Field       { return Field{K: k, Kind: KindInt32, Int64: int64(v)} }
func FInt64(k string, v int64) Field       { return Field{K: k, Kind: KindInt64, Int64: v} }
func FUint(k string, v uint) Field         { return Field{K: k, Kind: KindUint, Uint64: uint64(v)} }
func FUint8(k string, v uint8) Field       { return Field{K: k, Kind: KindUint8, Uint64: uint64(v)} }
func FUint16(k string, v uint16) Field     { return Field{K: k, Kind: KindUint16, Uint64: uint64(v)} }
func FUint32(k string, v uint32) Field     { return Field{K: k, Kind: KindUint32, Uint64: uint64(v)} }
func FUint64(k string, v uint64) Field     { return Field{K: k, Kind: KindUint64, Uint64: v} }
func FFloat32(k string, v float32) Field   { return Field{K: k, Kind: KindFloat32, Float64: float64(v)} }
func FFloat(k string, v float64) Field     { return Field{K: k, Kind: KindFloat64, Float64: v} }
func FBool(k string, v bool) Field         { return Field{K: k, Kind: KindBool, Bool: v} }
func FDur(k string, v time.Duration) Field { return Field{K: k, Kind: KindDuration, Dur: v} }
func FTime(k string, v time.Time) Field    { return Field{K: k, Kind: KindTime, Time: v} }
func FErr(k string, err error) Field       { return Field{K: k, Kind: KindError, Err: err} }
func FBytes(k string, b []byte) Field      { return Field{K: k, Kind: KindBytes, Bytes: b} }
func FAny(k string, v any) Field           { return Field{K: k, Kind: KindAny, Any: v} }
func FInt128(k string, v Int128) Field     { return Field{K: k, Kind: KindInt128, Any: v} }
func FUint128(k string, v Uint128) Field   { return Field{K: k, Kind: KindUint128, Any: v} }

// FArgs binds a lazily formatted value; it is rendered only when serialized.
func FArgs(k, format string, args ...any) Field {
	return Field{K: k, Kind: KindArgs, Any: Args{Format: format, Values: args}}
}

// FStringer binds a fmt.Stringer; String() is called only when serialized.
func FStringer(k string, v fmt.Stringer) Field {
	return Field{K: k, Kind: KindStringer, Any: v}
}

// FObject binds a value that serializes its own fields under "k.".
func FObject(k string, m ObjectMarshaler) Field {
	return Field{K: k, Kind: KindObject, Any: m}
}

// Of picks the narrowest Field kind for an arbitrary value.
// Used by front-ends that receive untyped key/value pairs.
func Of(k string, v any) Field {
	switch x := v.(type) {
	case nil:
		return FAny(k, nil)
	case string:
		return FStr(k, x)
	case bool:
		return FBool(k, x)
	case int:
		return FInt(k, x)
	case int8:
		return FInt8(k, x)
	case int16:
		return FInt16(k, x)
	case int32:
		return FInt32(k, x)
	case int64:
		return FInt64(k, x)
	case uint:
		return FUint(k, x)
	case uint8:
		return FUint8(k, x)
	case uint16:
		return FUint16(k, x)
	case uint32:
		return FUint32(k, x)
	case uint64:
		return FUint64(k, x)
	case float32:
		return FFloat32(k, x)
	case float64:
		return FFloat(k, x)
	case time.Duration:
		return FDur(k, x)
	case time.Time:
		return FTime(k, x)
	case []byte:
		return FBytes(k, x)
	case Int128:
		return FInt128(k, x)
	case Uint128:
		return FUint128(k, x)
	case Args:
		return Field{K: k, Kind: KindArgs, Any: x}
	case ObjectMarshaler:
		return FObject(k, x)
	case error:
		return FErr(k, x)
	case fmt.Stringer:
		return FStringer(k, x)
	default:
		return FAny(k, x)
	}
}

// Text renders the field value as a string, the way a text drain would.
// Drains without a native mapping for a kind fall back to it.
func (f Field) Text() string {
	switch f.Kind {
	case KindString:
		return f.Str
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return fmt.Sprint(f.Int64)
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return fmt.Sprint(f.Uint64)
	case KindFloat32, KindFloat64:
		return fmt.Sprint(f.Float64)
	case KindBool:
		return fmt.Sprint(f.Bool)
	case KindDuration:
		return f.Dur.String()
	case KindTime:
		return f.Time.Format(time.RFC3339Nano)
	case KindError:
		if f.Err == nil {
			return ""
		}
		return f.Err.Error()
	case KindBytes:
		return string(f.Bytes)
	case KindArgs:
		if a, ok := f.Any.(Args); ok {
			return a.String()
		}
		return ""
	default:
		return fmt.Sprintf("%+v", f.Any)
	}
}
