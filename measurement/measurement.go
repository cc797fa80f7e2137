// Package measurement decodes measurement sequences into package totals.
//
// A sequence is made of lowercase letters and underscores. Each character has
// a value ('_' is 0, 'a' is 1, ... 'y' is 25). A 'z' has no value of its own:
// it adds the previous character's value to a carry that is added to the next
// non-'z' character. The first value of a package is its length n; the sum
// of the following n values is that package's total.
package measurement

import (
	"regexp"
	"strconv"
	"strings"
)

var sequencePattern = regexp.MustCompile(`^[a-z_]+$`)

// IsValidSequence reports whether s is non-empty and contains only
// lowercase letters and underscores.
func IsValidSequence(s string) bool {
	return sequencePattern.MatchString(s)
}

// Convert returns the package totals encoded in s. An invalid sequence yields
// an empty slice. An unfinished last package counts as 0 unless the sequence
// ends in 'z'.
func Convert(s string) []int {
	totals := make([]int, 0)
	if !IsValidSequence(s) {
		return totals
	}

	var (
		newPackage = true
		carrying   bool
		carry      int
		length     int
		consumed   int
		sum        int
		value      int
	)
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case 'z':
			carrying = true
			carry += value
			continue
		case '_':
			value = 0
		default:
			value = int(ch-'a') + 1
		}
		if carrying {
			value += carry
			carry = 0
			carrying = false
		}

		if newPackage {
			length = value
			sum = 0
			consumed = 0
			newPackage = false
		} else {
			sum += value
			consumed++
		}

		if consumed == length {
			totals = append(totals, sum)
			newPackage = true
		}
		if i == len(s)-1 && consumed != length {
			totals = append(totals, 0)
		}
	}
	return totals
}

// FormatResult joins totals with commas, the form stored in the database.
func FormatResult(totals []int) string {
	parts := make([]string, len(totals))
	for i, v := range totals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
