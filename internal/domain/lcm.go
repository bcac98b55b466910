package domain

// NumberList is the validated LCM input: at least two positive integers, in the
// order the user typed them. Order drives display order in every derivation.
type NumberList []int64

// Power is a prime raised to an exponent. Presentation decides the markup.
type Power struct {
	Base     int64 `json:"base"`
	Exponent int64 `json:"exponent"`
}

// PrimeFactorization is the trial-division factorization of a single input.
type PrimeFactorization struct {
	Number          int64   `json:"number"`
	Factors         []int64 `json:"factors"`
	FactorString    string  `json:"factor_string"`
	Powers          []Power `json:"powers"`
	ExponentialForm string  `json:"exponential_form"`
}

// CombinedFactorization keeps, for every distinct prime, its highest exponent
// observed in any single input. Powers are sorted by ascending base.
type CombinedFactorization struct {
	Powers      []Power `json:"powers"`
	Display     string  `json:"display"`
	Calculation string  `json:"calculation"`
	LCM         int64   `json:"lcm"`
}

type PrimeFactorizationSteps struct {
	Factorizations []PrimeFactorization  `json:"factorizations"`
	Combined       CombinedFactorization `json:"combined"`
	LCM            int64                 `json:"lcm"`
}

// DivisionStep is one row of the division table.
type DivisionStep struct {
	Divisor   int64   `json:"divisor"`
	Quotients []int64 `json:"quotients"`
}

type DivisionMethodSteps struct {
	Table           []DivisionStep `json:"table"`
	DivisorsProduct string         `json:"divisors_product"`
	LCM             int64          `json:"lcm"`
}

// Multiple is Factor × the list's number.
type Multiple struct {
	Factor int64 `json:"factor"`
	Value  int64 `json:"value"`
	IsLCM  bool  `json:"is_lcm,omitempty"`
}

// MultiplesList enumerates multiples of Number. Truncated reports that the
// enumeration cap was hit before the LCM and the LCM was appended after a gap.
type MultiplesList struct {
	Number    int64      `json:"number"`
	Multiples []Multiple `json:"multiples"`
	Truncated bool       `json:"truncated,omitempty"`
}

type ListMultiplesSteps struct {
	Lists          []MultiplesList `json:"lists"`
	CommonMultiple int64           `json:"common_multiple"`
	LCM            int64           `json:"lcm"`
}

// LCMResult is the canonical LCM plus its three independent derivations.
type LCMResult struct {
	Numbers            NumberList              `json:"numbers"`
	LCM                int64                   `json:"lcm"`
	PrimeFactorization PrimeFactorizationSteps `json:"prime_factorization"`
	DivisionMethod     DivisionMethodSteps     `json:"division_method"`
	ListMultiples      ListMultiplesSteps      `json:"list_multiples"`
}

// Consistent reports whether every derivation agrees with the canonical LCM.
func (r LCMResult) Consistent() bool {
	return r.PrimeFactorization.LCM == r.LCM &&
		r.PrimeFactorization.Combined.LCM == r.LCM &&
		r.DivisionMethod.LCM == r.LCM &&
		r.ListMultiples.LCM == r.LCM &&
		r.ListMultiples.CommonMultiple == r.LCM
}
