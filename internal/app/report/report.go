// Package report renders calculation results as plain text for terminals.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/playback"
)

// Method selects which derivations are rendered.
type Method string

const (
	MethodAll       Method = "all"
	MethodPrime     Method = "prime"
	MethodDivision  Method = "division"
	MethodMultiples Method = "multiples"
)

// ParseMethod accepts the method names used on the command line. Empty means all.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return MethodAll, nil
	case MethodAll, MethodPrime, MethodDivision, MethodMultiples:
		return m, nil
	default:
		return "", &domain.OpError{
			Op:   "report.method",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported method %q (expected all|prime|division|multiples)", s),
		}
	}
}

func (m Method) includes(x Method) bool {
	return m == MethodAll || m == x
}

// LCM writes the summary and the derivations selected by method.
func LCM(w io.Writer, res domain.LCMResult, method Method) {
	fmt.Fprintf(w, "Numbers: %s\n", JoinNumbers(res.Numbers, ", "))
	fmt.Fprintf(w, "LCM:     %d\n", res.LCM)

	if method.includes(MethodPrime) {
		fmt.Fprintln(w)
		fmt.Fprint(w, PrimeSection(res.PrimeFactorization))
	}
	if method.includes(MethodDivision) {
		fmt.Fprintln(w)
		fmt.Fprint(w, DivisionSection(res.Numbers, res.DivisionMethod))
	}
	if method.includes(MethodMultiples) {
		fmt.Fprintln(w)
		fmt.Fprint(w, MultiplesSection(res.ListMultiples))
	}
}

func PrimeSection(s domain.PrimeFactorizationSteps) string {
	var b strings.Builder
	b.WriteString("Prime factorization\n")
	for _, f := range s.Factorizations {
		fmt.Fprintf(&b, "  %d = %s", f.Number, f.FactorString)
		if f.ExponentialForm != f.FactorString {
			fmt.Fprintf(&b, " = %s", f.ExponentialForm)
		}
		b.WriteString("\n")
	}

	c := s.Combined
	fmt.Fprintf(&b, "  LCM = %s", c.Display)
	if c.Calculation != c.Display {
		fmt.Fprintf(&b, " = %s", c.Calculation)
	}
	if c.Calculation != strconv.FormatInt(c.LCM, 10) {
		fmt.Fprintf(&b, " = %d", c.LCM)
	}
	b.WriteString("\n")
	return b.String()
}

// DivisionSection draws the table with each divisor next to the row it divides
// and the final row of ones underneath.
func DivisionSection(nums domain.NumberList, s domain.DivisionMethodSteps) string {
	rows := make([][]int64, 0, len(s.Table)+1)
	rows = append(rows, nums)
	for _, st := range s.Table {
		rows = append(rows, st.Quotients)
	}

	width := 1
	for _, st := range s.Table {
		width = max(width, len(strconv.FormatInt(st.Divisor, 10)))
	}
	cell := 1
	for _, r := range rows {
		for _, v := range r {
			cell = max(cell, len(strconv.FormatInt(v, 10)))
		}
	}

	var b strings.Builder
	b.WriteString("Division method\n")
	for i, r := range rows {
		div := ""
		if i < len(s.Table) {
			div = strconv.FormatInt(s.Table[i].Divisor, 10)
		}
		fmt.Fprintf(&b, "  %*s |", width, div)
		for _, v := range r {
			fmt.Fprintf(&b, " %*d", cell, v)
		}
		b.WriteString("\n")
	}

	product := s.DivisorsProduct
	if product == "" {
		product = "1"
	}
	fmt.Fprintf(&b, "  LCM = %s = %d\n", product, s.LCM)
	return b.String()
}

// MultiplesSection lists multiples per number with the LCM in brackets. A gap
// marks lists that hit the cap before reaching the LCM.
func MultiplesSection(s domain.ListMultiplesSteps) string {
	var b strings.Builder
	b.WriteString("Listing multiples\n")
	for _, l := range s.Lists {
		parts := make([]string, 0, len(l.Multiples)+1)
		for i, m := range l.Multiples {
			if l.Truncated && i == len(l.Multiples)-1 {
				parts = append(parts, "…")
			}
			v := strconv.FormatInt(m.Value, 10)
			if m.IsLCM {
				v = "[" + v + "]"
			}
			parts = append(parts, v)
		}
		fmt.Fprintf(&b, "  %d: %s\n", l.Number, strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "  First common multiple: %d\n", s.CommonMultiple)
	return b.String()
}

// Playback writes the original and adjusted durations and the time saved.
func Playback(w io.Writer, in domain.PlaybackInput, res domain.PlaybackResult) {
	fmt.Fprintf(w, "Original: %s\n", playback.FormatClock(in.Hours, in.Minutes, in.Seconds))
	fmt.Fprintf(w, "Speed:    %gx\n", in.Speed)
	fmt.Fprintf(w, "Adjusted: %s\n", playback.FormatClock(res.Hours, res.Minutes, res.Seconds))
	fmt.Fprintf(w, "Saved:    %s\n", res.TimeSavedFormatted)
}

// PlaybackExamples writes the reference table.
func PlaybackExamples(w io.Writer, examples []domain.PlaybackExample) {
	fmt.Fprintf(w, "%-10s %-6s %s\n", "TIME", "SPEED", "RESULT")
	for _, ex := range examples {
		fmt.Fprintf(w, "%-10s %-6s %s\n", ex.Time, strconv.FormatFloat(ex.Speed, 'g', -1, 64)+"x", ex.CalculatedTime)
	}
}

func JoinNumbers(nums []int64, sep string) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, sep)
}
