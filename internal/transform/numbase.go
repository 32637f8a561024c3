package transform

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var basePrefixes = map[string]int{"0b": 2, "0o": 8, "0x": 16}

// ConvertBase parses a number and prints it in binary, octal, decimal and hexadecimal.
//
// Options:
//   - from: input base 2, 8, 10 or 16. When unset, a 0b/0o/0x prefix selects
//     the base and anything else is decimal. When set, only the prefix of
//     that base is recognized.
func ConvertBase(input string, opts Options) Result {
	s := strings.ReplaceAll(strings.TrimSpace(input), "_", "")
	if s == "" {
		return fail("input is empty")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	base := 0
	if from := opts.Get("from", ""); from != "" {
		b, err := strconv.Atoi(from)
		if err != nil || !validBase(b) {
			return fail("unsupported base %q (want 2, 8, 10 or 16)", from)
		}
		base = b
	}

	// With an explicit base only that base's own prefix is stripped; "0b1"
	// in base 16 is the number 0xB1.
	if len(s) > 2 {
		if b, ok := basePrefixes[strings.ToLower(s[:2])]; ok && (base == 0 || base == b) {
			base = b
			s = s[2:]
		}
	}
	if base == 0 {
		base = 10
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok || s == "" {
		return fail("invalid base-%d number: %q", base, strings.TrimSpace(input))
	}
	if negative {
		n.Neg(n)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "binary: %s\n", n.Text(2))
	fmt.Fprintf(&b, "octal: %s\n", n.Text(8))
	fmt.Fprintf(&b, "decimal: %s\n", n.Text(10))
	fmt.Fprintf(&b, "hexadecimal: %s", strings.ToUpper(n.Text(16)))
	return Result{Output: b.String()}
}

func validBase(b int) bool {
	return b == 2 || b == 8 || b == 10 || b == 16
}
