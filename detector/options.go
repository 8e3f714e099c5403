package detector

import "github.com/ravensec/urldetector/scanopts"

// Options is the detector's bit mask, re-exported from scanopts so call sites never need to import
// that package directly.
type Options = scanopts.Options

// The individual bits and composite aliases, re-exported from scanopts. Their numeric values are
// part of the stable wire format of this package; see scanopts for the authoritative documentation.
const (
	Default                = scanopts.Default
	QuoteMatch             = scanopts.QuoteMatch
	SingleQuoteMatch       = scanopts.SingleQuoteMatch
	BracketMatch           = scanopts.BracketMatch
	XMLAngleBracketMatch   = scanopts.XMLAngleBracketMatch
	HTMLTagMatch           = scanopts.HTMLTagMatch
	AllowSingleLevelDomain = scanopts.AllowSingleLevelDomain
	Json                   = scanopts.Json
	JavaScript             = scanopts.JavaScript
	Xml                    = scanopts.Xml
	Html                   = scanopts.Html
)

// Config is the detector's option set, built up from functional Options for call sites that prefer
// detector.New(detector.WithHTML()) over passing a raw bit mask.
type Config struct {
	opts Options
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithOptions ORs raw into the Config's bit mask. It is the escape hatch for combinations that don't
// have a named functional option.
func WithOptions(raw Options) Option {
	return func(c *Config) {
		c.opts |= raw
	}
}

// WithJSON configures quote and bracket matching appropriate for scanning JSON documents.
func WithJSON() Option { return WithOptions(Json) }

// WithJavaScript additionally matches single-quoted string literals.
func WithJavaScript() Option { return WithOptions(JavaScript) }

// WithXML configures quote and angle-bracket matching appropriate for scanning XML documents.
func WithXML() Option { return WithOptions(Xml) }

// WithHTML configures the Html option set (quote and angle-bracket matching, plus the HTMLTagMatch
// bit) for scanning HTML markup.
func WithHTML() Option { return WithOptions(Html) }

// WithSingleLevelDomain accepts a bare, dot-free host such as "localhost" as a valid domain name.
func WithSingleLevelDomain() Option { return WithOptions(AllowSingleLevelDomain) }

func newConfig(opts []Option) Config {
	var c Config

	for _, o := range opts {
		o(&c)
	}

	return c
}
