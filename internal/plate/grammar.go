package plate

import "regexp"

// Indian license plate format patterns.
// Standard: XX00XX0000 or XX00X0000 (e.g., MH31AB1234, MH31A1234).
var platePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{1,3}\d{4}$`),          // MH31AB1234
	regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{1,2}\d{1,4}$`),        // partial reads with short digit runs
	regexp.MustCompile(`^[A-Z]{2}\s?\d{2}\s?[A-Z]{1,3}\s?\d{4}$`), // segment separators survived cleaning
}

// ValidFormat reports whether text matches a recognized plate grammar.
// Patterns are tried in order, short-circuiting on the first match.
// Text that matches nothing is merely reported invalid, never
// discarded: an imperfect read must still be checked against the
// registry.
func ValidFormat(text string) bool {
	for _, p := range platePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
