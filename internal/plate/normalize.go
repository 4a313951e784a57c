// Package plate implements cleaning, repair, validation and selection
// of OCR plate-text candidates.
package plate

import "strings"

// digitLookalikes maps letters commonly misread by OCR to the digit
// they stand in for. Applied only where a digit is structurally
// expected.
var digitLookalikes = map[byte]byte{
	'O': '0',
	'I': '1',
	'S': '5',
	'B': '8',
	'G': '6',
	'Z': '2',
}

// Clean strips every character that is not an ASCII letter or digit and
// uppercases the remainder.
func Clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// Normalize returns the canonical form of raw OCR output: cleaned to
// uppercase alphanumerics with digit look-alike repair applied to the
// district-code positions. Indian-format plates carry a two-letter
// state code first and a two-digit district code in positions 2-3, so
// letter/digit confusions are only resolved there; the state code and
// everything after position 4 pass through untouched.
//
// Normalize is idempotent: applying it twice yields the same result as
// applying it once.
func Normalize(raw string) string {
	cleaned := Clean(raw)
	if len(cleaned) < 4 {
		return cleaned
	}
	repaired := []byte(cleaned)
	for i := 2; i < 4; i++ {
		if d, ok := digitLookalikes[repaired[i]]; ok {
			repaired[i] = d
		}
	}
	return string(repaired)
}
