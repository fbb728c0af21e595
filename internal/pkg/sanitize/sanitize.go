// Package sanitize neutralizes script-injection vectors in free-text input
// before it is stored. All transforms are idempotent, so running them again
// over already-clean text is a no-op.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandlers = regexp.MustCompile(`(?i)on\w+=`)
)

// Text strips angle brackets, `javascript:` prefixes and inline event-handler
// attribute patterns, then trims surrounding whitespace. Substitutions repeat
// until the output is stable: a single pass could reassemble a forbidden
// pattern from its own fragments (e.g. "jjavascript:avascript:").
func Text(input string) string {
	out := input
	for {
		next := angleBrackets.ReplaceAllString(out, "")
		next = jsProtocol.ReplaceAllString(next, "")
		next = eventHandlers.ReplaceAllString(next, "")
		if next == out {
			break
		}
		out = next
	}
	return strings.TrimSpace(out)
}

// Email applies Text and lower-cases the result for canonical storage.
func Email(input string) string {
	return strings.ToLower(Text(input))
}
