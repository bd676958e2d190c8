package xlog

import (
	"math"
	"math/big"
	"testing"
)

func TestInt128Strings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"max u128", MaxUint128.String(), "340282366920938463463374607431768211455"},
		{"max i128", MaxInt128.String(), "170141183460469231731687303715884105727"},
		{"min i128", MinInt128.String(), "-170141183460469231731687303715884105728"},
		{"u64 widened", U128(math.MaxUint64).String(), "18446744073709551615"},
		{"negative widened", I128(-5).String(), "-5"},
		{"min i64 widened", I128(math.MinInt64).String(), "-9223372036854775808"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s: got %s want %s", c.name, c.got, c.want)
		}
	}
}

func TestInt128FitsInt64(t *testing.T) {
	t.Parallel()

	if v, ok := U128(math.MaxInt64).Int64(); !ok || v != math.MaxInt64 {
		t.Fatalf("MaxInt64 as u128 should fit, got %d %v", v, ok)
	}
	if _, ok := U128(math.MaxInt64 + 1).Int64(); ok {
		t.Fatal("MaxInt64+1 as u128 must not fit")
	}
	if _, ok := MaxUint128.Int64(); ok {
		t.Fatal("MaxUint128 must not fit")
	}
	if v, ok := I128(math.MinInt64).Int64(); !ok || v != math.MinInt64 {
		t.Fatalf("MinInt64 as i128 should fit, got %d %v", v, ok)
	}
	if v, ok := I128(-1).Int64(); !ok || v != -1 {
		t.Fatalf("-1 should fit, got %d %v", v, ok)
	}
	below := Int128{Hi: -1, Lo: math.MaxInt64} // MinInt64 - 1
	if _, ok := below.Int64(); ok {
		t.Fatalf("%s must not fit", below)
	}
	if _, ok := MaxInt128.Int64(); ok {
		t.Fatal("MaxInt128 must not fit")
	}
}

func TestInt128FromBigRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0", "-1", "42", "-170141183460469231731687303715884105728", "18446744073709551616"} {
		b, _ := new(big.Int).SetString(s, 10)
		v, ok := Int128FromBig(b)
		if !ok || v.String() != s {
			t.Fatalf("Int128FromBig(%s) = %s, %v", s, v, ok)
		}
	}
	tooBig := new(big.Int).Add(MaxInt128.Big(), big.NewInt(1))
	if _, ok := Int128FromBig(tooBig); ok {
		t.Fatal("overflow not reported")
	}

	u, ok := Uint128FromBig(MaxUint128.Big())
	if !ok || u != MaxUint128 {
		t.Fatalf("Uint128FromBig(max) = %v, %v", u, ok)
	}
	if _, ok := Uint128FromBig(big.NewInt(-1)); ok {
		t.Fatal("negative accepted")
	}
}
