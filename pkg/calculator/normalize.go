package calculator

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var labelReplacer = strings.NewReplacer("（", "(", "）", ")", "　", " ")

// Normalize turns a row label into a comparison key: full-width parentheses,
// spaces and letters folded to half-width, lower-cased, all whitespace removed.
// The key is never displayed.
func Normalize(label string) string {
	s := labelReplacer.Replace(label)
	s = width.Fold.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
