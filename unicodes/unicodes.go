package unicodes

// DotVariants lists the non-ASCII code points that a browser's address bar treats as a label
// separator inside a hostname, in addition to the ASCII '.'.
//
//   - U+3002 IDEOGRAPHIC FULL STOP
//   - U+FF0E FULLWIDTH FULL STOP
//   - U+FF61 HALFWIDTH IDEOGRAPHIC FULL STOP
var DotVariants = []rune{
	'。',
	'．',
	'｡',
}

// IsDotVariant reports whether r is one of DotVariants.
func IsDotVariant(r rune) bool {
	for _, dv := range DotVariants {
		if r == dv {
			return true
		}
	}

	return false
}

// InternationalBoundary is the first code point treated as "international" rather than ASCII inside
// a domain label. Bytes at or above this boundary are accepted in positions where plain ASCII would
// otherwise be rejected.
const InternationalBoundary = rune(0x00C0)

// IsInternational reports whether r is at or above InternationalBoundary.
func IsInternational(r rune) bool {
	return r >= InternationalBoundary
}
