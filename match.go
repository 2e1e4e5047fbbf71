package ms

import (
	"regexp"
	"strconv"
	"strings"
)

// pattern recognizes a complete duration string: optional minus sign, an
// integer or decimal magnitude (a bare leading dot is fine), optional
// spaces and an optional unit token. Anchored at both ends so trailing
// garbage never matches. Compiled once, the grammar is fixed.
var pattern = regexp.MustCompile(`(?i)^(-?(?:\d+)?\.?\d+) *([a-z]+)?$`)

// match extracts the magnitude and lowercased unit token from s. The
// token is empty when no unit was given. ok is false when s does not
// conform to the grammar.
func match(s string) (magnitude float64, token string, ok bool) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return n, strings.ToLower(m[2]), true
}
