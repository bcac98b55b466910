package lcm

import "github.com/aalvaropc/toolbelt/internal/domain"

// DivisionMethod builds the division table for nums.
//
// Each row divides every value that the smallest available divisor divides and
// carries the others unchanged. The loop condition is checked before the first
// row, so an all-ones input yields an empty table and a product of 1.
func DivisionMethod(nums domain.NumberList) domain.DivisionMethodSteps {
	row := append([]int64(nil), nums...)
	table := make([]domain.DivisionStep, 0)
	divisors := make([]int64, 0)
	product := int64(1)

	for anyAboveOne(row) {
		d := smallestDivisor(row)

		next := make([]int64, len(row))
		for i, v := range row {
			if v%d == 0 {
				next[i] = v / d
			} else {
				next[i] = v
			}
		}

		table = append(table, domain.DivisionStep{Divisor: d, Quotients: next})
		divisors = append(divisors, d)
		product *= d
		row = next
	}

	return domain.DivisionMethodSteps{
		Table:           table,
		DivisorsProduct: joinInts(divisors),
		LCM:             product,
	}
}

// smallestDivisor scans candidates from 2 up to the row's maximum. Some value
// is > 1 whenever it is called, so the scan always finds a divisor.
func smallestDivisor(row []int64) int64 {
	hi := maxOf(row)
	for d := int64(2); d <= hi; d++ {
		for _, v := range row {
			if v%d == 0 {
				return d
			}
		}
	}
	return hi
}

func anyAboveOne(row []int64) bool {
	for _, v := range row {
		if v > 1 {
			return true
		}
	}
	return false
}

func maxOf(row []int64) int64 {
	var m int64
	for _, v := range row {
		if v > m {
			m = v
		}
	}
	return m
}
