package slug

import (
	"strings"
)

// Make converts an arbitrary title into a lowercase URL-safe slug.
// Runs of characters outside [a-z0-9] collapse into a single hyphen and
// leading/trailing hyphens are trimmed, so "Hiking & Camping!!" becomes
// "hiking-camping".
func Make(input string) string {
	var builder strings.Builder

	builder.Grow(len(input))

	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(input) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			builder.WriteRune(r)

			lastHyphen = false
		default:
			if !lastHyphen {
				builder.WriteByte('-')

				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(builder.String(), "-")
}

// IsValid reports whether s is already a well-formed slug.
func IsValid(s string) bool {
	return s != "" && s == Make(s)
}
