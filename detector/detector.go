package detector

import (
	"strings"

	"github.com/ravensec/urldetector/charclass"
	"github.com/ravensec/urldetector/domain"
	"github.com/ravensec/urldetector/marker"
	"github.com/ravensec/urldetector/scanopts"
	"github.com/ravensec/urldetector/schemes"
	"github.com/ravensec/urldetector/textreader"
	"github.com/ravensec/urldetector/unicodes"
)

// Detector drives a single forward pass over a piece of text, producing every URL candidate it finds.
// A Detector is not safe for concurrent use; distinct Detectors on distinct inputs are independent.
type Detector struct {
	opts Options
}

// New constructs a Detector from functional Options.
func New(opts ...Option) *Detector {
	cfg := newConfig(opts)

	return &Detector{opts: cfg.opts}
}

// Detect scans text and returns every URL candidate d recognizes.
func (d *Detector) Detect(text string) []*marker.URL {
	return Detect(text, d.opts)
}

// Detect scans text for URL candidates using the raw Options bit mask. It never fails: malformed or
// ambiguous regions are simply not reported as URLs.
func Detect(text string, opts Options) []*marker.URL {
	s := &scanner{
		rd:   textreader.New(text),
		opts: opts,
	}

	return s.run()
}

// schemeSeparators are the literal spellings of "://" the detector recognizes after a scheme name,
// including the percent-encoded-colon form a browser still treats as a scheme boundary.
var schemeSeparators = []string{"://", "%3a//", "%3A//"}

// scanner carries the mutable, per-detection state: the shared reader, the candidate under
// construction, and the quote/bracket/angle-bracket nesting counters used to decide when embedded
// markup or string-literal delimiters should cut a candidate short.
type scanner struct {
	rd   *textreader.Reader
	opts Options

	buf strings.Builder
	off marker.Offsets

	hasScheme bool
	quoteOpen bool

	quoteDepth   int
	squoteDepth  int
	bracketDepth int
	angleDepth   int

	results []*marker.URL
}

func (s *scanner) run() []*marker.URL {
	prevChar := rune(0)

	for !s.rd.EOF() {
		c, err := s.rd.PeekAt(0)
		if err != nil {
			break
		}

		if c == ' ' {
			s.rd.Read() //nolint:errcheck // EOF already excluded by the loop guard

			prevChar = c

			continue
		}

		if s.looksLikeCandidateStart(c) {
			before := s.rd.Position()

			s.quoteOpen = prevChar == '"' && s.opts.Has(scanopts.QuoteMatch)
			s.attempt()

			if s.rd.Position() == before {
				s.rd.Read() //nolint:errcheck // EOF already excluded by the loop guard
			}

			prevChar = 0

			continue
		}

		s.rd.Read() //nolint:errcheck // EOF already excluded by the loop guard
		prevChar = c
	}

	return s.results
}

// looksLikeCandidateStart reports whether c could begin a scheme, a host (including a bracketed
// IPv6 literal), or a scheme-relative "//".
func (s *scanner) looksLikeCandidateStart(c rune) bool {
	if c == '/' || c == '[' {
		return true
	}

	return charclass.IsAlphanumeric(c) || unicodes.IsInternational(c)
}

// attempt tries to read one URL candidate starting at the reader's current position: an optional
// scheme, an optional userinfo, a mandatory valid host, and whatever authority/path/query/fragment
// the domain reader reports follows it.
func (s *scanner) attempt() {
	s.buf.Reset()
	s.off = marker.Offsets{Scheme: -1, Userinfo: -1, Host: -1, Port: -1, Path: -1, Query: -1, Fragment: -1}
	s.hasScheme = false
	s.quoteDepth, s.squoteDepth, s.bracketDepth, s.angleDepth = 0, 0, 0, 0

	if c, err := s.rd.PeekAt(0); err == nil && c == '/' {
		s.tryHTML5Root()

		return
	}

	s.hasScheme = s.tryScheme()
	s.tryUserinfo()

	s.off.Host = s.buf.Len()

	state, err := domain.Read(s.rd, &s.buf, "", s.opts, s.onMatchingChar)
	if err != nil || state == domain.InvalidDomainName {
		return
	}

	switch state {
	case domain.ReadPort:
		s.readPort()
	case domain.ReadPath:
		s.readPath()
	case domain.ReadQueryString:
		s.readQueryString()
	case domain.ReadFragment:
		s.readFragment()
	}

	s.commit()
}

// tryHTML5Root recognizes a scheme-relative "//host/path" candidate: the produced marker has no
// scheme.
func (s *scanner) tryHTML5Root() {
	if !s.peekEqualFold("//") {
		return
	}

	s.consumeLiteral("//")

	s.off.Host = s.buf.Len()

	state, err := domain.Read(s.rd, &s.buf, "", s.opts, s.onMatchingChar)
	if err != nil || state == domain.InvalidDomainName {
		return
	}

	switch state {
	case domain.ReadPort:
		s.readPort()
	case domain.ReadPath:
		s.readPath()
	case domain.ReadQueryString:
		s.readQueryString()
	case domain.ReadFragment:
		s.readFragment()
	}

	s.commit()
}

// tryScheme consumes a recognized scheme name followed by "://" (or its percent-encoded-colon
// spelling), reporting whether one was found.
func (s *scanner) tryScheme() bool {
	for _, name := range schemes.Recognized {
		for _, sep := range schemeSeparators {
			if s.peekEqualFold(name + sep) {
				s.off.Scheme = s.buf.Len()
				s.consumeLiteral(name)
				s.consumeLiteral(sep)

				return true
			}
		}
	}

	return false
}

// tryUserinfo looks ahead, without committing, for a "user[:pass]@" prefix before the host: a dot or
// '[' seen before any '@' means this is a domain, not userinfo, and the lookahead is abandoned with
// nothing consumed.
func (s *scanner) tryUserinfo() {
	n := 0

	for {
		c, err := s.rd.PeekAt(n)
		if err != nil {
			return
		}

		switch {
		case c == '@':
			start := s.buf.Len()
			s.off.Userinfo = start
			s.consumeLiteral(userinfoText(s.rd, n))
			s.consumeLiteral("@")

			return
		case charclass.IsDot(c), c == '[', c == ' ', c == '#', c == '/', c == '?':
			return
		case s.isActiveStopChar(c):
			return
		}

		n++

		if n > 256 {
			return
		}
	}
}

// userinfoText returns the next n code units of rd without consuming them.
func userinfoText(rd *textreader.Reader, n int) string {
	s, err := rd.Peek(n)
	if err != nil {
		return ""
	}

	return s
}

// readPort reads digits following a ':' until a non-digit terminates the port. A non-numeric
// remainder (e.g. "google.com:hello.world") is not a port: the offset is cleared and the host is
// committed without one, leaving the rest of the text for a later candidate to pick up.
func (s *scanner) readPort() {
	preColon := s.buf.String()

	s.consumeLiteral(":")

	start := s.buf.Len()

	for {
		c, err := s.rd.PeekAt(0)
		if err != nil {
			break
		}

		if !charclass.IsNumeric(c) {
			break
		}

		s.consumeRune()
	}

	if s.buf.Len() == start {
		// No digits followed the ':' — it wasn't a port after all. Drop it from the committed
		// text rather than leaving a bare trailing ':' with no offset accounting for it.
		s.buf.Reset()
		s.buf.WriteString(preColon)
		s.off.Port = -1

		return
	}

	s.off.Port = start

	c, err := s.rd.PeekAt(0)
	if err != nil {
		return
	}

	switch c {
	case '/':
		s.readPath()
	case '?':
		s.readQueryString()
	case '#':
		s.readFragment()
	}
}

func (s *scanner) readPath() {
	s.off.Path = s.buf.Len()
	s.consumeUntilComponentBoundary(func(c rune) bool { return c == '?' || c == '#' }, s.readQueryString, s.readFragment)
}

func (s *scanner) readQueryString() {
	if s.off.Query < 0 {
		if c, err := s.rd.PeekAt(0); err == nil && c == '?' {
			s.consumeLiteral("?")
		}

		s.off.Query = s.buf.Len()
	}

	s.consumeUntilComponentBoundary(func(c rune) bool { return c == '#' }, nil, s.readFragment)
}

func (s *scanner) readFragment() {
	if s.off.Fragment < 0 {
		if c, err := s.rd.PeekAt(0); err == nil && c == '#' {
			s.consumeLiteral("#")
		}

		s.off.Fragment = s.buf.Len()
	}

	s.consumeUntilComponentBoundary(nil, nil, nil)
}

// consumeUntilComponentBoundary appends characters until whitespace, an active matching stop
// character, or a boundary recognized by atBoundary is reached; atBoundary's two handlers (for the
// two possible next components) are invoked without consuming the boundary character itself.
func (s *scanner) consumeUntilComponentBoundary(atBoundary func(rune) bool, first, second func()) {
	for {
		c, err := s.rd.PeekAt(0)
		if err != nil {
			return
		}

		if c == ' ' || s.isActiveStopChar(c) {
			return
		}

		if atBoundary != nil && atBoundary(c) {
			if c == '?' && first != nil {
				first()
			} else if second != nil {
				second()
			}

			return
		}

		s.consumeRune()
	}
}

// commit finalizes the current candidate: a trailing quote introduced only because the candidate
// started just after an opening '"' is stripped before the marker is recorded.
func (s *scanner) commit() {
	text := s.buf.String()

	if s.quoteOpen && strings.HasSuffix(text, `"`) {
		text = text[:len(text)-1]
	}

	if text == "" {
		return
	}

	s.results = append(s.results, marker.New(text, s.off))
}

func (s *scanner) onMatchingChar(r rune) {
	s.track(r)
}

func (s *scanner) consumeRune() {
	r, err := s.rd.Read()
	if err != nil {
		return
	}

	s.buf.WriteRune(r)
	s.track(r)
}

func (s *scanner) consumeLiteral(lit string) {
	for range lit {
		if _, err := s.rd.PeekAt(0); err != nil {
			return
		}

		s.consumeRune()
	}
}

func (s *scanner) peekEqualFold(lit string) bool {
	runes := []rune(lit)

	text, err := s.rd.Peek(len(runes))
	if err != nil {
		return false
	}

	return strings.EqualFold(text, lit)
}

// track updates the quote/bracket/angle-bracket nesting counters that isActiveStopChar consults.
func (s *scanner) track(r rune) {
	switch r {
	case '"':
		if s.opts.Has(scanopts.QuoteMatch) {
			s.quoteDepth++
		}
	case '\'':
		if s.opts.Has(scanopts.SingleQuoteMatch) {
			s.squoteDepth++
		}
	case '(', '[', '{':
		if s.opts.Has(scanopts.BracketMatch) {
			s.bracketDepth++
		}
	case ')', ']', '}':
		if s.opts.Has(scanopts.BracketMatch) {
			s.bracketDepth--
		}
	case '<':
		if s.opts.Has(scanopts.XMLAngleBracketMatch) {
			s.angleDepth++
		}
	case '>':
		if s.opts.Has(scanopts.XMLAngleBracketMatch) {
			s.angleDepth--
		}
	}
}

// isActiveStopChar reports whether c is a closing delimiter, under the active options, whose count
// would exceed its opening count: the signal to end the current candidate rather than consume c.
func (s *scanner) isActiveStopChar(c rune) bool {
	switch c {
	case '"':
		return s.opts.Has(scanopts.QuoteMatch)
	case '\'':
		return s.opts.Has(scanopts.SingleQuoteMatch)
	case ')', ']', '}':
		return s.opts.Has(scanopts.BracketMatch) && s.bracketDepth <= 0
	case '>':
		return s.opts.Has(scanopts.XMLAngleBracketMatch) && s.angleDepth <= 0
	}

	return false
}
