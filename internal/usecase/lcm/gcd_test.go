package lcm

import (
	"errors"
	"testing"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{1071, 462, 21},
		{5, 5, 5},
		{9, 0, 9},
	}
	for _, c := range cases {
		if got := GCD(c.a, c.b); got != c.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLCM_FundamentalIdentity(t *testing.T) {
	for a := int64(1); a <= 60; a++ {
		for b := int64(1); b <= 60; b++ {
			l, err := LCM(domain.NumberList{a, b})
			if err != nil {
				t.Fatalf("LCM(%d, %d): %v", a, b, err)
			}
			if l*GCD(a, b) != a*b {
				t.Fatalf("lcm(%d,%d)*gcd != a*b: %d*%d != %d", a, b, l, GCD(a, b), a*b)
			}
		}
	}
}

func TestLCM_SingleElement(t *testing.T) {
	for _, a := range []int64{1, 2, 17, 360, 999983} {
		got, err := LCM(domain.NumberList{a})
		if err != nil {
			t.Fatalf("LCM([%d]): %v", a, err)
		}
		if got != a {
			t.Fatalf("LCM([%d]) = %d", a, got)
		}
	}
}

func TestLCM_OrderIndependent(t *testing.T) {
	a, _ := LCM(domain.NumberList{4, 6, 10, 15})
	b, _ := LCM(domain.NumberList{15, 10, 6, 4})
	if a != 60 || b != 60 {
		t.Fatalf("expected 60 regardless of order, got %d and %d", a, b)
	}
}

func TestLCM_Overflow(t *testing.T) {
	_, err := LCM(domain.NumberList{1_000_000_007, 998_244_353, 1_000_000_009})
	if !errors.Is(err, domain.ErrOverflow) {
		t.Fatalf("expected overflow error, got %v", err)
	}
}
