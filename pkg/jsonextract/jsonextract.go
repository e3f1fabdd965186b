// Package jsonextract pulls JSON objects out of free-form text, such as the
// reply of a chat model that wraps its JSON in prose.
package jsonextract

import (
	"errors"
	"strings"
)

var ErrNoObject = errors.New("no balanced JSON object found")

// FirstObject returns the first balanced {...} span in s. Braces inside JSON
// string literals do not count towards the balance. When the first opening
// brace never closes, later candidates are tried; if none balances,
// ErrNoObject is returned.
func FirstObject(s string) (string, error) {
	for start := 0; ; {
		idx := strings.IndexByte(s[start:], '{')
		if idx < 0 {
			return "", ErrNoObject
		}
		open := start + idx

		if end, ok := scanBalanced(s, open); ok {
			return s[open : end+1], nil
		}
		start = open + 1
	}
}

// scanBalanced scans s from the opening brace at open and reports the index
// of the matching closing brace.
func scanBalanced(s string, open int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := open; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
