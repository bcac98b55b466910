package lcm

import (
	"testing"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func TestDivisionMethod_TwelveEighteen(t *testing.T) {
	steps := DivisionMethod(domain.NumberList{12, 18})

	wantDivisors := []int64{2, 2, 3, 3}
	wantRows := [][]int64{{6, 9}, {3, 9}, {1, 3}, {1, 1}}

	if len(steps.Table) != len(wantDivisors) {
		t.Fatalf("expected %d rows, got %d", len(wantDivisors), len(steps.Table))
	}
	for i, row := range steps.Table {
		if row.Divisor != wantDivisors[i] {
			t.Fatalf("row %d: divisor %d, want %d", i, row.Divisor, wantDivisors[i])
		}
		for j := range row.Quotients {
			if row.Quotients[j] != wantRows[i][j] {
				t.Fatalf("row %d: quotients %v, want %v", i, row.Quotients, wantRows[i])
			}
		}
	}
	if steps.DivisorsProduct != "2 × 2 × 3 × 3" {
		t.Fatalf("unexpected product string %q", steps.DivisorsProduct)
	}
	if steps.LCM != 36 {
		t.Fatalf("expected 36, got %d", steps.LCM)
	}
}

func TestDivisionMethod_CarriesNonDivisible(t *testing.T) {
	steps := DivisionMethod(domain.NumberList{4, 9})
	first := steps.Table[0]
	if first.Divisor != 2 || first.Quotients[0] != 2 || first.Quotients[1] != 9 {
		t.Fatalf("expected 9 carried unchanged, got %+v", first)
	}
}

func TestDivisionMethod_AllOnesTerminates(t *testing.T) {
	steps := DivisionMethod(domain.NumberList{1, 1})
	if len(steps.Table) != 0 {
		t.Fatalf("expected empty table, got %v", steps.Table)
	}
	if steps.LCM != 1 {
		t.Fatalf("expected product 1, got %d", steps.LCM)
	}
}

func TestDivisionMethod_DoesNotMutateInput(t *testing.T) {
	in := domain.NumberList{8, 12}
	_ = DivisionMethod(in)
	if in[0] != 8 || in[1] != 12 {
		t.Fatalf("input mutated: %v", in)
	}
}
