package recordstore

import (
	"math"
	"strings"
)

// ParseID coerces a raw identifier the way a lenient integer parse would:
// leading whitespace and an optional sign are accepted, then the longest run of
// decimal digits is used and anything after it is ignored ("12abc" -> 12).
// ok is false when no digits lead the value; callers treat that as not found.
func ParseID(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s); digits++ {
		c := s[digits]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
