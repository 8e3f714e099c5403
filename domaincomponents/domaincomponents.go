package domaincomponents

import (
	"index/suffixarray"
	"strings"

	"github.com/ravensec/urldetector/tlds"
)

// Domain is a DNS host split into its subdomain, root (second-level) label, and top-level label.
//
//   - Subdomain: everything before the root label ("www" in "www.example.com"), empty if none.
//   - Root: the registrable label immediately before the top-level label ("example").
//   - TopLevel: the longest known public suffix at the end of the host ("com", or "co.uk").
type Domain struct {
	Subdomain string
	Root      string
	TopLevel  string
}

// String reconstructs the dotted host from its parts, omitting any that are empty.
func (d *Domain) String() string {
	var parts []string

	if d.Subdomain != "" {
		parts = append(parts, d.Subdomain)
	}

	if d.Root != "" {
		parts = append(parts, d.Root)
	}

	if d.TopLevel != "" {
		parts = append(parts, d.TopLevel)
	}

	return strings.Join(parts, ".")
}

// Parser splits hosts into Domain values using a suffix-array index over a set of known TLDs.
type Parser struct {
	sa *suffixarray.Index
}

// Option configures a Parser.
type Option func(*Parser)

// WithTLDs replaces the Parser's TLD set with a custom one, instead of the default
// tlds.Official + tlds.Pseudo union.
func WithTLDs(list ...string) Option {
	return func(p *Parser) {
		p.sa = buildIndex(list)
	}
}

// New builds a Parser over the default TLD set (tlds.Official plus tlds.Pseudo), optionally
// adjusted by the given options.
func New(opts ...Option) *Parser {
	p := &Parser{sa: buildIndex(defaultTLDs())}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func defaultTLDs() []string {
	all := make([]string, 0, len(tlds.Official)+len(tlds.Pseudo))
	all = append(all, tlds.Official...)
	all = append(all, tlds.Pseudo...)

	return all
}

func buildIndex(list []string) *suffixarray.Index {
	return suffixarray.New([]byte("\x00" + strings.Join(list, "\x00") + "\x00"))
}

// Parse splits host into a Domain. If no known TLD matches, the whole host becomes Root with an
// empty TopLevel and Subdomain, mirroring the teacher parser's behavior for unrecognized suffixes.
func (p *Parser) Parse(host string) *Domain {
	d := &Domain{}

	parts := strings.Split(host, ".")

	if len(parts) <= 1 {
		d.Root = host

		return d
	}

	offset := p.findTLDOffset(parts)

	if offset < 0 {
		d.Root = host

		return d
	}

	d.Subdomain = strings.Join(parts[:offset], ".")
	d.Root = parts[offset]
	d.TopLevel = strings.Join(parts[offset+1:], ".")

	return d
}

// findTLDOffset walks parts from the end, looking for the longest dotted suffix present in the
// TLD index, and returns the index of the label just before that suffix (the Root), or -1 if no
// known suffix matches.
func (p *Parser) findTLDOffset(parts []string) int {
	offset := -1

	for i := len(parts) - 1; i >= 0; i-- {
		candidate := strings.Join(parts[i:], ".")

		if len(p.sa.Lookup([]byte("\x00"+candidate+"\x00"), -1)) > 0 {
			offset = i - 1
		} else {
			break
		}
	}

	return offset
}
