package problemgen

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned by ParseAnswer for input containing anything
// other than decimal digits.
var ErrNotNumeric = errors.New("answer must be a whole number")

// CheckAnswer reports whether answer is exactly the product of the question.
// There is no partial credit and no tolerance.
func CheckAnswer(answer int, q Question) bool {
	return answer == q.Product()
}

// ParseAnswer converts typed input into an answer value.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Empty input is zero (a cleared field shows zero as empty)
//   - Leading zeros are ignored ("056" is 56)
//   - Signs, decimals and any other characters are rejected
func ParseAnswer(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotNumeric
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return n, nil
}

// FormatAnswer renders an answer for an input field. Zero renders as empty.
func FormatAnswer(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
