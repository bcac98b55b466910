package tui

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aalvaropc/toolbelt/internal/app/report"
	"github.com/aalvaropc/toolbelt/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// highlightLCM swaps the bracketed LCM used by plain-text reports for the
// theme's highlight style.
func highlightLCM(t Theme, s string, lcm int64) string {
	v := strconv.FormatInt(lcm, 10)
	return strings.ReplaceAll(s, "["+v+"]", t.Highlight.Render(v))
}

func renderLCMResult(t Theme, res domain.LCMResult, method report.Method) string {
	var b strings.Builder

	b.WriteString("Numbers: ")
	b.WriteString(report.JoinNumbers(res.Numbers, ", "))
	b.WriteString("\nLCM:     ")
	b.WriteString(t.Highlight.Render(strconv.FormatInt(res.LCM, 10)))
	b.WriteString("\n")

	if method == report.MethodAll || method == report.MethodPrime {
		b.WriteString("\n")
		b.WriteString(report.PrimeSection(res.PrimeFactorization))
	}
	if method == report.MethodAll || method == report.MethodDivision {
		b.WriteString("\nDivision method\n")
		b.WriteString(renderDivisionTable(t, res.Numbers, res.DivisionMethod))
		b.WriteString("\n  LCM = ")
		b.WriteString(res.DivisionMethod.DivisorsProduct)
		b.WriteString(" = ")
		b.WriteString(strconv.FormatInt(res.DivisionMethod.LCM, 10))
		b.WriteString("\n")
	}
	if method == report.MethodAll || method == report.MethodMultiples {
		b.WriteString("\n")
		b.WriteString(highlightLCM(t, report.MultiplesSection(res.ListMultiples), res.LCM))
	}

	return b.String()
}

// renderDivisionTable draws the divisor column and one column per input.
func renderDivisionTable(t Theme, nums domain.NumberList, s domain.DivisionMethodSteps) string {
	rows := make([][]string, 0, len(s.Table)+1)

	prev := []int64(nums)
	for _, st := range s.Table {
		rows = append(rows, divisionRow(strconv.FormatInt(st.Divisor, 10), prev))
		prev = st.Quotients
	}
	rows = append(rows, divisionRow("", prev))

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.Table).
		BorderRow(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			if col == 0 {
				return st.Bold(true)
			}
			return st
		})

	return tbl.String()
}

func divisionRow(divisor string, vals []int64) []string {
	row := make([]string, 0, len(vals)+1)
	row = append(row, divisor)
	for _, v := range vals {
		row = append(row, strconv.FormatInt(v, 10))
	}
	return row
}

func renderPlaybackResult(t Theme, in domain.PlaybackInput, res domain.PlaybackResult) string {
	var buf bytes.Buffer
	report.Playback(&buf, in, res)
	return strings.Replace(buf.String(), res.TimeSavedFormatted, t.Highlight.Render(res.TimeSavedFormatted), 1)
}

func renderPlaybackExamples(examples []domain.PlaybackExample) string {
	var buf bytes.Buffer
	report.PlaybackExamples(&buf, examples)
	return buf.String()
}
