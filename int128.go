package xlog

import (
	"math"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit words.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a two's complement signed 128-bit integer.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	MaxInt128  = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
	MinInt128  = Int128{Hi: math.MinInt64, Lo: 0}
)

var (
	bigMaxUint128 = MaxUint128.Big()
	bigMaxInt128  = MaxInt128.Big()
	bigMinInt128  = MinInt128.Big()
	bigTwo64      = new(big.Int).Lsh(big.NewInt(1), 64)
)

// U128 widens a uint64.
func U128(v uint64) Uint128 { return Uint128{Lo: v} }

// I128 widens an int64, sign-extending the high word.
func I128(v int64) Int128 {
	if v < 0 {
		return Int128{Hi: -1, Lo: uint64(v)}
	}
	return Int128{Lo: uint64(v)}
}

// Int64 reports the value as an int64 when it fits.
func (u Uint128) Int64() (int64, bool) {
	if u.Hi != 0 || u.Lo > math.MaxInt64 {
		return 0, false
	}
	return int64(u.Lo), true
}

// Int64 reports the value as an int64 when it fits.
func (i Int128) Int64() (int64, bool) {
	switch {
	case i.Hi == 0 && i.Lo <= math.MaxInt64:
		return int64(i.Lo), true
	case i.Hi == -1 && i.Lo > math.MaxInt64:
		return int64(i.Lo), true
	default:
		return 0, false
	}
}

func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (i Int128) Big() *big.Int {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

// String returns the canonical decimal rendering.
func (u Uint128) String() string { return u.Big().String() }

// String returns the canonical decimal rendering.
func (i Int128) String() string { return i.Big().String() }

// Uint128FromBig converts b; ok is false when b is negative or too large.
func Uint128FromBig(b *big.Int) (Uint128, bool) {
	if b == nil || b.Sign() < 0 || b.Cmp(bigMaxUint128) > 0 {
		return Uint128{}, false
	}
	hi := new(big.Int).Rsh(b, 64)
	lo := new(big.Int).Mod(b, bigTwo64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, true
}

// Int128FromBig converts b; ok is false when b is outside the int128 range.
func Int128FromBig(b *big.Int) (Int128, bool) {
	if b == nil || b.Cmp(bigMaxInt128) > 0 || b.Cmp(bigMinInt128) < 0 {
		return Int128{}, false
	}
	// Floor division keeps Lo as the unsigned low word for negatives.
	hi, lo := new(big.Int).DivMod(b, bigTwo64, new(big.Int))
	return Int128{Hi: hi.Int64(), Lo: lo.Uint64()}, true
}
