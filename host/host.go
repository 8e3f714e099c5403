package host

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"

	"github.com/ravensec/urldetector/domain"
	"github.com/ravensec/urldetector/urlutil"
)

// Result is the outcome of normalizing a host: its canonical textual form, and, for a host that
// parses as an IP literal, the 16-byte address representation (IPv4-mapped for an IPv4 host).
type Result struct {
	Text  string
	Bytes [16]byte
	IsIP  bool
}

// Normalize reduces raw to canonical form:
//
//  1. Empty input is returned unchanged.
//  2. Unicode labels are converted to ASCII via IDNA/Punycode; a host that fails this step is
//     reported as an error and otherwise left unnormalized.
//  3. The result is lowercased and iteratively percent-decoded.
//  4. An IPv4 or (if bracketed) IPv6 literal is parsed and rewritten in canonical textual form,
//     with its 16-byte representation populated.
//  5. Otherwise, extra dots are folded, non-printable/'#'/'%' characters are re-encoded, and any
//     literal "\x" sequence introduced by the earlier steps is escaped as '%'.
func Normalize(raw string) (Result, error) {
	if raw == "" {
		return Result{}, nil
	}

	ascii, err := idna.ToASCII(raw)
	if err != nil {
		return Result{}, fmt.Errorf("host: idna conversion failed: %w", err)
	}

	decoded := urlutil.Decode(strings.ToLower(ascii))

	if strings.HasPrefix(decoded, "[") && strings.HasSuffix(decoded, "]") {
		if groups, ok := domain.ParseIPv6Literal(decoded); ok {
			return Result{Text: formatIPv6(groups), Bytes: ipv6Bytes(groups), IsIP: true}, nil
		}
	} else if octets, ok := domain.ParseIPv4(decoded); ok {
		return Result{
			Text:  fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3]),
			Bytes: ipv4MappedBytes(octets),
			IsIP:  true,
		}, nil
	}

	folded := urlutil.FoldExtraDots(decoded)
	reencoded := urlutil.Encode(folded)
	reencoded = escapeBackslashX(reencoded)

	return Result{Text: reencoded}, nil
}

// formatIPv6 renders groups as a bracketed, colon-separated, lowercase-hex IPv6 literal with every
// group written out — this module does not apply RFC 5952's "::" zero-run compression.
func formatIPv6(groups [8]uint16) string {
	parts := make([]string, len(groups))

	for i, g := range groups {
		parts[i] = fmt.Sprintf("%x", g)
	}

	return "[" + strings.Join(parts, ":") + "]"
}

func ipv6Bytes(groups [8]uint16) [16]byte {
	var b [16]byte

	for i, g := range groups {
		b[i*2] = byte(g >> 8)
		b[i*2+1] = byte(g)
	}

	return b
}

// ipv4MappedBytes returns octets in the 16-byte IPv4-mapped IPv6 form (::ffff:a.b.c.d).
func ipv4MappedBytes(octets [4]byte) [16]byte {
	var b [16]byte

	b[10] = 0xff
	b[11] = 0xff
	b[12] = octets[0]
	b[13] = octets[1]
	b[14] = octets[2]
	b[15] = octets[3]

	return b
}

func escapeBackslashX(s string) string {
	return strings.ReplaceAll(s, `\x`, "%")
}
