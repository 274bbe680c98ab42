// Package envexpr expands ${env.KEY} references in configuration text.
package envexpr

import (
	"os"
	"strings"
	"unicode"
)

const prefix = "${env."

// Expand replaces every ${env.KEY} with the value of environment variable
// KEY, or an empty string when it is unset.
func Expand(value string) string {
	return ExpandWith(value, os.Getenv)
}

// ExpandWith is Expand with a custom variable lookup. Keys must consist of
// letters, digits or '_'; anything else leaves the prefix untouched and
// scanning resumes right after it. A reference without a closing brace is
// copied verbatim together with the rest of the input.
func ExpandWith(value string, lookup func(key string) string) string {
	if !strings.Contains(value, prefix) {
		return value
	}
	var b strings.Builder
	for {
		idx := strings.Index(value, prefix)
		if idx < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:idx])
		rest := value[idx+len(prefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(value[idx:])
			return b.String()
		}
		key := rest[:end]
		if !isKey(key) {
			b.WriteString(prefix)
			value = rest
			continue
		}
		b.WriteString(lookup(key))
		value = rest[end+1:]
	}
}

func isKey(key string) bool {
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
