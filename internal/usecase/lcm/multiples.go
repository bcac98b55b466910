package lcm

import "github.com/aalvaropc/toolbelt/internal/domain"

const (
	// MinMultiples is the fewest multiples listed per number.
	MinMultiples = 3
	// MaxMultiples caps how many consecutive multiples are generated per number.
	MaxMultiples = 10
)

// Multiples lists n×1, n×2, … for every number until at least MinMultiples
// were produced and the last one reached lcm, generating at most MaxMultiples.
// If the cap is hit first, lcm is appended after the gap and the list is
// marked Truncated, so lcm appears in every list.
func Multiples(nums domain.NumberList, lcm int64) domain.ListMultiplesSteps {
	lists := make([]domain.MultiplesList, 0, len(nums))

	for _, n := range nums {
		ml := domain.MultiplesList{Number: n, Multiples: make([]domain.Multiple, 0, MaxMultiples)}

		reached := false
		for i := int64(1); len(ml.Multiples) < MaxMultiples; i++ {
			v, ok := mul(n, i)
			if !ok {
				// lcm is a multiple of n below the overflow, so it was already listed.
				break
			}
			ml.Multiples = append(ml.Multiples, domain.Multiple{Factor: i, Value: v, IsLCM: v == lcm})
			if v >= lcm {
				reached = true
			}
			if reached && len(ml.Multiples) >= MinMultiples {
				break
			}
		}

		if !reached && n > 0 {
			ml.Multiples = append(ml.Multiples, domain.Multiple{Factor: lcm / n, Value: lcm, IsLCM: true})
			ml.Truncated = true
		}

		lists = append(lists, ml)
	}

	return domain.ListMultiplesSteps{
		Lists:          lists,
		CommonMultiple: lcm,
		LCM:            lcm,
	}
}

// Contains reports whether v is one of the listed multiples.
func Contains(ml domain.MultiplesList, v int64) bool {
	for _, m := range ml.Multiples {
		if m.Value == v {
			return true
		}
	}
	return false
}
