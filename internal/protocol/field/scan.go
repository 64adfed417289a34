package field

import "strconv"

// digitRun returns the length of the run of ASCII digits at the start of s.
func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// scanSigned reads a leading base-10 literal with an optional minus sign.
// consumed is 0 when nothing could be scanned or the literal overflows bits.
func scanSigned(s string, bits int) (v int64, consumed int) {
	sign := 0
	if len(s) > 0 && s[0] == '-' {
		sign = 1
	}
	n := digitRun(s[sign:])
	if n == 0 {
		return 0, 0
	}
	v, err := strconv.ParseInt(s[:sign+n], 10, bits)
	if err != nil {
		return 0, 0
	}
	return v, sign + n
}

// scanUnsigned reads a leading base-10 literal without sign.
func scanUnsigned(s string, bits int) (v uint64, consumed int) {
	n := digitRun(s)
	if n == 0 {
		return 0, 0
	}
	v, err := strconv.ParseUint(s[:n], 10, bits)
	if err != nil {
		return 0, 0
	}
	return v, n
}
