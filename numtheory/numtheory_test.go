package numtheory_test

import (
	"math"
	"testing"

	"github.com/menmos/intrange-go/numtheory"
)

func Test_ExtendedGCD(t *testing.T) {

	type testCase struct {
		name    string
		a, b    int
		gcd     int
		u, v    int
		checkUV bool
	}

	cases := []testCase{
		{"coprime", 708, 853, 1, 100, -83, true},
		{"common factor", 240, 46, 2, -9, 47, true},
		{"zero rhs", 12, 0, 12, 1, 0, true},
		{"zero lhs", 0, 7, 7, 0, 1, true},
		{"both zero", 0, 0, 0, 1, 0, true},
		{"negative lhs", -87, 2, 1, 0, 0, false},
		{"negative rhs", 72, -51, 3, 0, 0, false},
		{"both negative", -18, -12, 6, 0, 0, false},
	}

	for _, tCase := range cases {
		t.Run(tCase.name, func(t *testing.T) {
			gcd, u, v := numtheory.ExtendedGCD(tCase.a, tCase.b)
			if gcd != tCase.gcd {
				t.Errorf("expected gcd=%d, got %d", tCase.gcd, gcd)
				return
			}
			if tCase.checkUV && (u != tCase.u || v != tCase.v) {
				t.Errorf("expected coefficients (%d, %d), got (%d, %d)", tCase.u, tCase.v, u, v)
			}
			if tCase.a*u+tCase.b*v != gcd {
				t.Errorf("bezout identity broken: %d*%d + %d*%d != %d", tCase.a, u, tCase.b, v, gcd)
			}
		})
	}
}

func Test_Sign(t *testing.T) {
	for x, want := range map[int]int{-42: -1, 0: 0, 9: 1, math.MinInt: -1, math.MaxInt: 1} {
		if got := numtheory.Sign(x); got != want {
			t.Errorf("Sign(%d): expected %d, got %d", x, want, got)
		}
	}
}

func Test_FloorMod(t *testing.T) {
	type testCase struct {
		a, m, want int
	}

	cases := []testCase{
		{7, 3, 1},
		{-7, 3, 2},
		{-9, 3, 0},
		{0, 5, 0},
	}

	for _, tCase := range cases {
		if got := numtheory.FloorMod(tCase.a, tCase.m); got != tCase.want {
			t.Errorf("FloorMod(%d, %d): expected %d, got %d", tCase.a, tCase.m, tCase.want, got)
		}
	}
}

func Test_MulMod(t *testing.T) {
	if got := numtheory.MulMod(5, 6, 7); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	// 2^60 * 16 overflows int64; 2^64 mod (2^61 - 1) is 8.
	if got := numtheory.MulMod(1<<60, 16, 1<<61-1); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}
