package calculator

import (
	"regexp"
	"strconv"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ToNumber reads a sheet cell as a number. Everything but digits, '.' and '-'
// is dropped ("¥12,345" → 12345, "-3.5%" → -3.5); whatever is still not a
// number counts as 0.
func ToNumber(raw string) float64 {
	s := nonNumeric.ReplaceAllString(raw, "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
