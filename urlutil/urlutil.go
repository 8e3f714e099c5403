// Package urlutil implements the small, self-contained string transforms that the detector, the host
// normalizer, and the path normalizer all share: iterative percent-decoding, whitespace stripping,
// percent-encoding, and extra-dot folding. None of these operations can fail; malformed input is
// passed through as far as it can be interpreted.
package urlutil

import (
	"strings"

	"github.com/ravensec/urldetector/charclass"
)

// Decode iteratively percent-decodes s. Unlike a single-pass unescape, it keeps re-scanning: if a
// decoded byte is itself '%', the position is re-examined, and a stack of not-yet-decodable '%'
// positions lets a later decode reach back and collapse them too, so "%25%32%35" decodes in one call
// to "%".
//
// Concretely: "%25" decodes to "%", "%32" decodes to "2", "%35" decodes to "5". Scanning left to
// right, "%25%32%35" first decodes the leading "%25" to "%". That decoded '%' is pushed as a pending
// position and the scan continues, decoding "%32" to '2' and "%35" to '5', producing "%25" again — at
// which point the pending '%' lets the scan jump back and decode that too, yielding "%".
func Decode(s string) string {
	for {
		decoded, changed := decodePass(s)
		if !changed {
			return decoded
		}

		s = decoded
	}
}

// decodePass performs a single left-to-right decoding pass over s, returning the result and whether
// any "%XX" sequence was decoded.
func decodePass(s string) (result string, changed bool) {
	runes := []rune(s)

	var (
		out     []rune
		pending []int // positions (in out) of '%' bytes not (yet) followed by a decodable hex pair
	)

	i := 0

	for i < len(runes) {
		if runes[i] == '%' && i+2 < len(runes) && charclass.IsHex(runes[i+1]) && charclass.IsHex(runes[i+2]) {
			decodedByte := hexValue(runes[i+1])<<4 | hexValue(runes[i+2])
			out = append(out, rune(decodedByte))
			changed = true
			i += 3

			if decodedByte == '%' {
				pending = append(pending, len(out)-1)
			} else if len(pending) > 0 {
				// The byte just appended might complete a decodable pair together with the
				// previous two appended bytes and an earlier pending '%'. Re-check the tail.
				out, pending = collapsePending(out, pending)
			}

			continue
		}

		out = append(out, runes[i])
		i++
	}

	out, pending = collapsePending(out, pending)
	_ = pending

	return string(out), changed
}

// collapsePending re-examines the tail of out starting at each pending '%' position, decoding any
// "%XX" sequence that has become available now that more bytes have been appended, and drops
// positions that can no longer ever decode (the '%' is not immediately followed by two bytes yet, so
// it stays pending only while more input remains to be appended after it).
func collapsePending(out []rune, pending []int) ([]rune, []int) {
	for len(pending) > 0 {
		p := pending[len(pending)-1]

		if p+2 >= len(out) {
			break
		}

		if !charclass.IsHex(out[p+1]) || !charclass.IsHex(out[p+2]) {
			pending = pending[:len(pending)-1]

			continue
		}

		decodedByte := hexValue(out[p+1])<<4 | hexValue(out[p+2])
		tail := append([]rune{}, out[p+3:]...)
		out = append(out[:p], append([]rune{rune(decodedByte)}, tail...)...)
		pending = pending[:len(pending)-1]

		if decodedByte == '%' {
			pending = append(pending, p)
		}
	}

	return out, pending
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}

	return 0
}

// StripSpecials removes horizontal tab (0x09), line feed (0x0A), carriage return (0x0D), and ASCII
// space from s.
func StripSpecials(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case 0x09, 0x0A, 0x0D, ' ':
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Encode percent-encodes every code unit of s outside the printable ASCII range (0x20, 0x7F)
// exclusive, plus '#' and '%', as an uppercase "%XX" escape.
func Encode(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if mustEncode(r) {
			encodeRune(&b, r)

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

func mustEncode(r rune) bool {
	if r == '#' || r == '%' {
		return true
	}

	return !(r > 0x20 && r < 0x7F)
}

const upperHex = "0123456789ABCDEF"

func encodeRune(b *strings.Builder, r rune) {
	for _, c := range []byte(string(r)) {
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
}

// FoldExtraDots collapses runs of '.' in s to a single '.' and strips any leading or trailing '.'.
func FoldExtraDots(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	lastWasDot := false

	for _, r := range s {
		if r == '.' {
			if lastWasDot {
				continue
			}

			lastWasDot = true
			b.WriteByte('.')

			continue
		}

		lastWasDot = false
		b.WriteRune(r)
	}

	return strings.Trim(b.String(), ".")
}
