// Package domain implements the nested state machine that validates and extracts a single host
// (DNS name, IPv4 literal, or bracketed IPv6 literal) from the shared text cursor, on behalf of the
// detector. It owns the label-length, dot-count, and all-numeric bookkeeping that a browser address
// bar applies before deciding a candidate host is well-formed, and reports which component — port,
// path, query, or fragment — follows it in the source text.
package domain

import (
	"strings"

	"github.com/ravensec/urldetector/charclass"
	"github.com/ravensec/urldetector/scanopts"
	"github.com/ravensec/urldetector/textreader"
	"github.com/ravensec/urldetector/unicodes"
)

// scanState is the bookkeeping carried across every code unit of a candidate host: how many label
// separators have been seen, how long the label in progress is, whether every ordinary character
// seen so far has been a digit, and the bracket-literal state for an IPv6 host.
type scanState struct {
	dots       int
	labelLen   int
	allNumeric bool

	sawBracket    bool
	bracketClosed bool
}

func newScanState() *scanState {
	return &scanState{allNumeric: true}
}

// wouldAccept reports whether c (already classified as a dot separator or not) may extend the
// candidate host without mutating state. The caller commits with apply only after this passes.
func (st *scanState) wouldAccept(c rune, isDot bool) bool {
	if st.sawBracket && !st.bracketClosed {
		return c != '['
	}

	if st.bracketClosed {
		return false
	}

	if c == '[' {
		return st.dots == 0 && st.labelLen == 0
	}

	if isDot {
		return st.labelLen > 0 && st.labelLen <= 64
	}

	if charclass.IsAlphanumeric(c) || c == '-' || c == '_' || unicodes.IsInternational(c) {
		return st.labelLen < 64
	}

	return false
}

// apply commits a unit already approved by wouldAccept. percentOrdinary marks a percent-encoded
// escape accepted as an ordinary (non-dot) character, whose decoded class is unknown at scan time;
// it is conservatively treated as breaking the all-numeric run.
func (st *scanState) apply(c rune, isDot bool, percentOrdinary bool) {
	if st.sawBracket && !st.bracketClosed {
		if c == ']' {
			st.bracketClosed = true
		}

		return
	}

	if c == '[' {
		st.sawBracket = true

		return
	}

	if isDot {
		st.dots++
		st.labelLen = 0

		return
	}

	if percentOrdinary || !charclass.IsNumeric(c) {
		st.allNumeric = false
	}

	st.labelLen++
}

// Read consumes a candidate host from rd, starting from any already-scanned prefix (already present
// in buf and reflected in the caller's own state), and reports whether it is valid and, if so, what
// follows it. Every code unit Read consumes from rd is appended to buf and passed to onChar, so a
// caller tracking its own nesting counters (quotes, brackets, angle brackets) stays in sync even
// though domain.Read is pulling characters directly from the shared cursor.
func Read(rd *textreader.Reader, buf *strings.Builder, prefix string, opts scanopts.Options, onChar func(rune)) (State, error) {
	st := newScanState()
	domainRunes := []rune(prefix)

	for _, r := range domainRunes {
		st.apply(r, charclass.IsDot(r), false)
	}

	var (
		pendingTerm rune
		haveTerm    bool
	)

scan:
	for !rd.EOF() {
		if rd.CanRead(3) {
			peek3, err := rd.Peek(3)
			if err == nil && (peek3 == "%2e" || peek3 == "%2E") {
				if !st.wouldAccept('.', true) {
					break scan
				}

				if err := consumeN(rd, buf, onChar, &domainRunes, 3); err != nil {
					return InvalidDomainName, err
				}

				st.apply('.', true, false)

				continue
			}

			if peek3[0] == '%' && charclass.IsHex(rune(peek3[1])) && charclass.IsHex(rune(peek3[2])) {
				if !st.wouldAccept('a', false) {
					break scan
				}

				if err := consumeN(rd, buf, onChar, &domainRunes, 3); err != nil {
					return InvalidDomainName, err
				}

				st.apply('a', false, true)

				continue
			}
		}

		nc, err := rd.PeekAt(0)
		if err != nil {
			break scan
		}

		insideBracket := st.sawBracket && !st.bracketClosed

		if !insideBracket {
			switch nc {
			case ':', '/', '?', '#':
				pendingTerm = nc
				haveTerm = true

				break scan
			}
		}

		isDot := charclass.IsDot(nc)
		if !st.wouldAccept(nc, isDot) {
			break scan
		}

		if err := consumeN(rd, buf, onChar, &domainRunes, 1); err != nil {
			return InvalidDomainName, err
		}

		st.apply(nc, isDot, false)
	}

	domainStr := string(domainRunes)

	if !finalValidate(domainStr, opts, st) {
		return InvalidDomainName, nil
	}

	if !haveTerm {
		return ValidDomainName, nil
	}

	switch pendingTerm {
	case ':':
		return ReadPort, nil
	case '/':
		return ReadPath, nil
	case '?':
		return ReadQueryString, nil
	case '#':
		return ReadFragment, nil
	}

	return ValidDomainName, nil
}

// consumeN reads n code units from rd (already known to be available), appending each to buf and
// domainRunes and invoking onChar.
func consumeN(rd *textreader.Reader, buf *strings.Builder, onChar func(rune), domainRunes *[]rune, n int) error {
	for i := 0; i < n; i++ {
		r, err := rd.Read()
		if err != nil {
			return err
		}

		buf.WriteRune(r)
		*domainRunes = append(*domainRunes, r)

		if onChar != nil {
			onChar(r)
		}
	}

	return nil
}

// finalValidate applies the closing checks once scanning has stopped: a bracketed literal must
// parse as IPv6, an all-numeric candidate must parse as IPv4, any other candidate that parses as
// IPv4 (such as one with a "0x" part) is accepted as one, and a DNS name must be shorter than 255
// code units with at most 127 labels and a non-empty trailing label of acceptable length (relaxed
// for an "xn--" IDNA label) and, absent AllowSingleLevelDomain, at least one dot.
func finalValidate(s string, opts scanopts.Options, st *scanState) bool {
	if s == "" {
		return false
	}

	if st.sawBracket {
		if !st.bracketClosed || s[0] != '[' || s[len(s)-1] != ']' {
			return false
		}

		_, ok := ParseIPv6Literal(s)

		return ok
	}

	if st.labelLen == 0 {
		return false
	}

	if st.allNumeric {
		_, ok := ParseIPv4(s)

		return ok
	}

	if _, ok := ParseIPv4(s); ok {
		return true
	}

	if len(s) >= 255 || st.dots+1 > 127 {
		return false
	}

	if st.dots == 0 && !opts.Has(scanopts.AllowSingleLevelDomain) {
		return false
	}

	lastLabel := s
	if idx := strings.LastIndexByte(s, '.'); idx >= 0 {
		lastLabel = s[idx+1:]
	}

	if strings.HasPrefix(strings.ToLower(lastLabel), "xn--") {
		return len(lastLabel) <= 64
	}

	return len(lastLabel) >= 2 && len(lastLabel) <= 22
}
