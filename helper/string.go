package helper

import (
	"strings"
	"unicode"
)

// Underscore converts a CamelCase struct field name to snake_case,
// matching the JSON field names used across the API.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
