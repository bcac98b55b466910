package lcm

import "github.com/aalvaropc/toolbelt/internal/domain"

// Calculate computes the canonical LCM of nums and its three derivations.
// The derivations run independently over the same input.
func Calculate(nums domain.NumberList) (domain.LCMResult, error) {
	if len(nums) == 0 {
		return domain.LCMResult{}, domain.NewInputError(domain.ReasonTooFew, "")
	}
	for _, n := range nums {
		if n <= 0 {
			return domain.LCMResult{}, domain.NewInputError(domain.ReasonNonPositive, "")
		}
	}

	canonical, err := LCM(nums)
	if err != nil {
		return domain.LCMResult{}, err
	}

	return domain.LCMResult{
		Numbers:            append(domain.NumberList(nil), nums...),
		LCM:                canonical,
		PrimeFactorization: PrimeFactorization(nums),
		DivisionMethod:     DivisionMethod(nums),
		ListMultiples:      Multiples(nums, canonical),
	}, nil
}

// Evaluate parses input and calculates its LCM. Parse errors stop before any
// derivation runs.
func Evaluate(input string, limits domain.LimitsConfig) (domain.LCMResult, error) {
	nums, err := Parse(input, limits)
	if err != nil {
		return domain.LCMResult{}, err
	}
	return Calculate(nums)
}
