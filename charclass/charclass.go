package charclass

import "github.com/ravensec/urldetector/unicodes"

// IsHex reports whether r is an ASCII hexadecimal digit (0-9, a-f, A-F).
func IsHex(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}

	return false
}

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsNumeric reports whether r is an ASCII digit.
func IsNumeric(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAlphanumeric reports whether r is an ASCII letter or digit.
func IsAlphanumeric(r rune) bool {
	return IsAlpha(r) || IsNumeric(r)
}

// IsUnreserved reports whether r is an RFC 3986 unreserved character: an alphanumeric, or one of
// '-', '.', '_', '~'.
func IsUnreserved(r rune) bool {
	switch r {
	case '-', '.', '_', '~':
		return true
	}

	return IsAlphanumeric(r)
}

// IsDot reports whether r is the ASCII '.' or one of the Unicode dot variants a browser accepts as a
// domain label separator.
func IsDot(r rune) bool {
	return r == '.' || unicodes.IsDotVariant(r)
}

// IsWhitespace reports whether r is one of the whitespace code units the text reader normalizes to a
// single ASCII space: space, tab, CR, LF.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}

	return false
}

// SplitByDot splits s on any dot variant (ASCII '.', the Unicode look-alikes, and the percent-encoded
// "%2e"/"%2E" sequences), preserving empty segments the way strings.Split does for a plain
// separator. It does not itself decode percent-escapes outside of recognizing "%2e"/"%2E" as a
// separator token.
func SplitByDot(s string) []string {
	var (
		segments []string
		current  []rune
		runes    = []rune(s)
	)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if IsDot(r) {
			segments = append(segments, string(current))
			current = nil

			continue
		}

		if r == '%' && i+2 < len(runes) && runes[i+1] == '2' && (runes[i+2] == 'e' || runes[i+2] == 'E') {
			segments = append(segments, string(current))
			current = nil
			i += 2

			continue
		}

		current = append(current, r)
	}

	segments = append(segments, string(current))

	return segments
}
