package lcm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Parse turns a comma-separated string into a NumberList.
//
// Checks run in a fixed order and the first failure wins: token count, then
// the digit-only format of every token, then each value's sign and ceiling.
// A zero MaxValue or MaxNumbers in limits disables that bound.
func Parse(input string, limits domain.LimitsConfig) (domain.NumberList, error) {
	tokens := splitTokens(input)

	if len(tokens) < 2 {
		return nil, domain.NewInputError(domain.ReasonTooFew, "")
	}
	if limits.MaxNumbers > 0 && len(tokens) > limits.MaxNumbers {
		return nil, domain.NewInputError(domain.ReasonTooMany, "")
	}

	for _, tok := range tokens {
		if !isDigits(tok) {
			return nil, domain.NewInputError(domain.ReasonInvalid, tok)
		}
	}

	out := make(domain.NumberList, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, domain.NewInputError(domain.ReasonTooLarge, tok)
			}
			return nil, domain.NewInputError(domain.ReasonInvalid, tok)
		}
		if n <= 0 {
			return nil, domain.NewInputError(domain.ReasonNonPositive, tok)
		}
		if limits.MaxValue > 0 && n > limits.MaxValue {
			return nil, domain.NewInputError(domain.ReasonTooLarge, tok)
		}
		out = append(out, n)
	}

	return out, nil
}

func splitTokens(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
