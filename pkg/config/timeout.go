package config

import (
	"strings"
	"time"
	"unicode"
)

// DefaultTimeoutFromEnv resolves the default timeout from
// TIMEKEEP_DEFAULT_TIMEOUT, falling back to FallbackTimeout.
func DefaultTimeoutFromEnv(lookup LookupFunc) time.Duration {
	v, _ := lookup(EnvDefaultTimeout)
	return ParseTimeoutMinutes(v)
}

// ParseTimeoutMinutes converts a minute count to a duration.
//
// Only the leading integer is read. Leading whitespace (Unicode spaces and
// the byte order mark included) is skipped, then an optional sign and the
// run of digits after it are used; anything that follows is ignored ("7min"
// is 7 minutes, "2.5" is 2 minutes). A "0x" or "0X" prefix reads the digits
// as hexadecimal ("0x10" is 16 minutes). A value with no leading integer, or
// one that comes to zero minutes, yields FallbackTimeout.
func ParseTimeoutMinutes(s string) time.Duration {
	minutes, ok := leadingInt(s)
	if !ok || minutes == 0 {
		return FallbackTimeout
	}
	return time.Duration(minutes) * time.Minute
}

// maxMinutes keeps the result within time.Duration's range.
const maxMinutes = int64(1<<63-1) / int64(time.Minute)

func leadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := int64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var n int64
	digits := 0
	for ; digits < len(s); digits++ {
		d, ok := digitValue(s[digits], base)
		if !ok {
			break
		}
		if n < maxMinutes {
			n = n*base + d
		}
	}
	if digits == 0 {
		return 0, false
	}
	if n > maxMinutes || n < 0 {
		n = maxMinutes
	}
	if neg {
		n = -n
	}
	return n, true
}

func digitValue(c byte, base int64) (int64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0'), true
	case base == 16 && c >= 'a' && c <= 'f':
		return int64(c-'a') + 10, true
	case base == 16 && c >= 'A' && c <= 'F':
		return int64(c-'A') + 10, true
	}
	return 0, false
}
