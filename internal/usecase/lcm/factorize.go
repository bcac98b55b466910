package lcm

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

const timesSep = " × "

// Factors returns the prime factors of n in ascending order, with repetition.
// Trial division starts at 2 and moves to the next candidate only once the
// current one no longer divides the remaining quotient.
func Factors(n int64) []int64 {
	factors := make([]int64, 0)
	for d := int64(2); n > 1; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	return factors
}

// Powers collapses runs of equal factors into base^exponent pairs.
func Powers(factors []int64) []Power {
	out := make([]Power, 0, len(factors))
	for _, f := range factors {
		if last := len(out) - 1; last >= 0 && out[last].Base == f {
			out[last].Exponent++
			continue
		}
		out = append(out, Power{Base: f, Exponent: 1})
	}
	return out
}

// Power is re-exported so callers of this package rarely need domain directly.
type Power = domain.Power

// Factorize builds the display-ready factorization of a single number.
func Factorize(n int64) domain.PrimeFactorization {
	factors := Factors(n)
	powers := Powers(factors)

	return domain.PrimeFactorization{
		Number:          n,
		Factors:         factors,
		FactorString:    joinInts(factors),
		Powers:          powers,
		ExponentialForm: FormatPowers(powers),
	}
}

// FormatPowers renders powers as "2^2 × 3". The exponent is omitted when 1.
func FormatPowers(powers []Power) string {
	if len(powers) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(powers))
	for _, p := range powers {
		s := strconv.FormatInt(p.Base, 10)
		if p.Exponent != 1 {
			s += "^" + strconv.FormatInt(p.Exponent, 10)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, timesSep)
}

// Combine keeps, for every prime seen across facts, the largest exponent found
// in any single factorization. Exponents are not summed across numbers.
func Combine(facts []domain.PrimeFactorization) domain.CombinedFactorization {
	maxExp := map[int64]int64{}
	for _, f := range facts {
		for _, p := range f.Powers {
			if p.Exponent > maxExp[p.Base] {
				maxExp[p.Base] = p.Exponent
			}
		}
	}

	bases := make([]int64, 0, len(maxExp))
	for b := range maxExp {
		bases = append(bases, b)
	}
	sort.Slice(bases, func(i, j int) bool { return bases[i] < bases[j] })

	powers := make([]Power, 0, len(bases))
	terms := make([]int64, 0, len(bases))
	product := int64(1)
	for _, b := range bases {
		p := Power{Base: b, Exponent: maxExp[b]}
		v := ipow(p.Base, p.Exponent)
		powers = append(powers, p)
		terms = append(terms, v)
		product *= v
	}

	return domain.CombinedFactorization{
		Powers:      powers,
		Display:     FormatPowers(powers),
		Calculation: joinInts(terms),
		LCM:         product,
	}
}

// PrimeFactorization runs the prime-factorization derivation over nums.
func PrimeFactorization(nums domain.NumberList) domain.PrimeFactorizationSteps {
	facts := make([]domain.PrimeFactorization, 0, len(nums))
	for _, n := range nums {
		facts = append(facts, Factorize(n))
	}

	combined := Combine(facts)
	return domain.PrimeFactorizationSteps{
		Factorizations: facts,
		Combined:       combined,
		LCM:            combined.LCM,
	}
}

func ipow(base, exp int64) int64 {
	out := int64(1)
	for i := int64(0); i < exp; i++ {
		out *= base
	}
	return out
}

func joinInts(in []int64) string {
	if len(in) == 0 {
		return "1"
	}
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, timesSep)
}
