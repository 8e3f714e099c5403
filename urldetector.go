package urldetector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ravensec/urldetector/detector"
	"github.com/ravensec/urldetector/host"
	"github.com/ravensec/urldetector/marker"
	"github.com/ravensec/urldetector/path"
	"github.com/ravensec/urldetector/schemes"
)

// Detect scans text for URL candidates using the raw detector.Options bit mask. It never fails:
// malformed or ambiguous regions are simply not reported as URLs.
func Detect(text string, options detector.Options) []*marker.URL {
	return detector.Detect(text, options)
}

// ParseSingle detects exactly one URL in text. Special whitespace (tab, CR, LF) is stripped and a
// literal space is replaced with "%20" before scanning, with single-level-domain mode enabled so a
// bare host like "localhost" is recognized. It returns ErrMalformedURL if text contains zero URLs or
// more than one.
func ParseSingle(text string) (*marker.URL, error) {
	prepared := prepareForSingleParse(text)

	urls := detector.Detect(prepared, detector.AllowSingleLevelDomain)
	if len(urls) != 1 {
		return nil, fmt.Errorf("urldetector: parsing %q: %w", text, ErrMalformedURL)
	}

	return urls[0], nil
}

func prepareForSingleParse(text string) string {
	var b strings.Builder

	b.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\t', '\r', '\n':
			continue
		case ' ':
			b.WriteString("%20")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Normalize rebuilds u with its host and path reduced to canonical form (§4.7, §4.8), leaving
// scheme, userinfo, port, query, and fragment unchanged. It returns nil if u is nil.
func Normalize(u *marker.URL) *marker.URL {
	if u == nil {
		return nil
	}

	normalizedHost := u.Host()

	if result, err := host.Normalize(u.Host()); err == nil && result.Text != "" {
		normalizedHost = result.Text
	}

	normalizedPath := u.Path()
	if normalizedPath != "" {
		normalizedPath = path.Normalize(normalizedPath)
	}

	var b strings.Builder

	off := marker.Offsets{Scheme: -1, Userinfo: -1, Host: -1, Port: -1, Path: -1, Query: -1, Fragment: -1}

	if scheme := u.Scheme(); scheme != "" {
		off.Scheme = b.Len()

		b.WriteString(scheme)
		b.WriteString("://")
	} else {
		b.WriteString("//")
	}

	if user := u.Username(); user != "" {
		off.Userinfo = b.Len()

		b.WriteString(user)

		if pass := u.Password(); pass != "" {
			b.WriteByte(':')
			b.WriteString(pass)
		}

		b.WriteByte('@')
	}

	off.Host = b.Len()
	b.WriteString(normalizedHost)

	if port := u.Port(); port >= 0 {
		if dp, ok := schemes.DefaultPort[strings.ToLower(u.Scheme())]; !ok || dp != port {
			b.WriteByte(':')
			off.Port = b.Len()
			b.WriteString(strconv.Itoa(port))
		}
	}

	if normalizedPath != "" {
		off.Path = b.Len()
		b.WriteString(normalizedPath)
	}

	if q := u.Query(); q != "" {
		b.WriteByte('?')
		off.Query = b.Len()
		b.WriteString(q)
	}

	if f := u.Fragment(); f != "" {
		b.WriteByte('#')
		off.Fragment = b.Len()
		b.WriteString(f)
	}

	return marker.New(b.String(), off)
}
