package lcm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func TestEvaluate_Scenarios(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"12, 18", 36},
		{"4,6", 12},
		{"9,12", 36},
		{"8, 14", 56},
		{"9, 15", 45},
		{"6, 12", 12},
		{"15, 20", 60},
		{"12, 18, 24", 72},
	}
	for _, c := range cases {
		res, err := Evaluate(c.input, domain.DefaultConfig().Limits)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", c.input, err)
		}
		if res.LCM != c.want {
			t.Fatalf("Evaluate(%q) = %d, want %d", c.input, res.LCM, c.want)
		}
		if !res.Consistent() {
			t.Fatalf("Evaluate(%q): derivations disagree: %+v", c.input, res)
		}
	}
}

func TestEvaluate_ParseErrorStopsEarly(t *testing.T) {
	res, err := Evaluate("5", domain.DefaultConfig().Limits)
	if !errors.Is(err, domain.ErrTooFewNumbers) {
		t.Fatalf("expected too few numbers, got %v", err)
	}
	if diff := cmp.Diff(domain.LCMResult{}, res); diff != "" {
		t.Fatalf("expected no partial result (-want +got):\n%s", diff)
	}
}

func TestCalculate_CrossConsistency(t *testing.T) {
	check := func(nums domain.NumberList) {
		t.Helper()

		res, err := Calculate(nums)
		if err != nil {
			t.Fatalf("Calculate(%v): %v", nums, err)
		}
		if !res.Consistent() {
			t.Fatalf("Calculate(%v): derivations disagree", nums)
		}

		product := int64(1)
		for _, p := range res.PrimeFactorization.Combined.Powers {
			product *= ipow(p.Base, p.Exponent)
		}
		if product != res.LCM {
			t.Fatalf("Calculate(%v): combined factorization %d != %d", nums, product, res.LCM)
		}

		divisors := int64(1)
		for _, row := range res.DivisionMethod.Table {
			divisors *= row.Divisor
		}
		if divisors != res.LCM {
			t.Fatalf("Calculate(%v): division product %d != %d", nums, divisors, res.LCM)
		}

		for _, ml := range res.ListMultiples.Lists {
			if !Contains(ml, res.LCM) {
				t.Fatalf("Calculate(%v): lcm missing from multiples of %d", nums, ml.Number)
			}
		}
	}

	for a := int64(1); a <= 40; a++ {
		for b := int64(1); b <= 40; b++ {
			check(domain.NumberList{a, b})
		}
	}
	check(domain.NumberList{7, 11, 13})
	check(domain.NumberList{2, 3, 5, 7, 11, 13, 17, 19})
	check(domain.NumberList{360, 1024, 999})
}

func TestCalculate_Idempotent(t *testing.T) {
	nums := domain.NumberList{12, 18, 30}

	first, err := Calculate(nums)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	second, err := Calculate(nums)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ (-first +second):\n%s", diff)
	}
}

func TestCalculate_RejectsNonPositive(t *testing.T) {
	_, err := Calculate(domain.NumberList{4, 0})
	if !errors.Is(err, domain.ErrNonPositive) {
		t.Fatalf("expected non-positive error, got %v", err)
	}
}

func TestCalculate_EndToEndTwelveEighteen(t *testing.T) {
	res, err := Evaluate("12, 18", domain.DefaultConfig().Limits)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.LCM != 36 {
		t.Fatalf("expected 36, got %d", res.LCM)
	}
	if res.PrimeFactorization.Combined.Display != "2^2 × 3^2" {
		t.Fatalf("unexpected combined factorization %q", res.PrimeFactorization.Combined.Display)
	}
	if res.DivisionMethod.DivisorsProduct != "2 × 2 × 3 × 3" {
		t.Fatalf("unexpected divisors %q", res.DivisionMethod.DivisorsProduct)
	}
	for _, ml := range res.ListMultiples.Lists {
		if !Contains(ml, 36) {
			t.Fatalf("expected 36 among multiples of %d", ml.Number)
		}
	}
}
