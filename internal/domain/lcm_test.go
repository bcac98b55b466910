package domain

import "testing"

func TestLCMResultConsistent(t *testing.T) {
	r := LCMResult{
		Numbers:            NumberList{4, 6},
		LCM:                12,
		PrimeFactorization: PrimeFactorizationSteps{Combined: CombinedFactorization{LCM: 12}, LCM: 12},
		DivisionMethod:     DivisionMethodSteps{LCM: 12},
		ListMultiples:      ListMultiplesSteps{CommonMultiple: 12, LCM: 12},
	}
	if !r.Consistent() {
		t.Fatalf("expected result to be consistent")
	}

	r.DivisionMethod.LCM = 24
	if r.Consistent() {
		t.Fatalf("expected disagreeing division method to be inconsistent")
	}
}
