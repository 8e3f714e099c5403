package marker

import (
	"strconv"
	"strings"

	"github.com/ravensec/urldetector/host"
	"github.com/ravensec/urldetector/schemes"
)

// Offsets locates each of a URL's seven components within the original scanned text. Every field
// is the index of that component's first content rune (not counting any delimiter such as "://",
// "@", ":", "?", or "#"), or -1 if the component is absent. Host is the only field that is always
// present for a committed marker.
type Offsets struct {
	Scheme   int
	Userinfo int
	Host     int
	Port     int
	Path     int
	Query    int
	Fragment int
}

// URL is the detector's output value: the original text plus the offsets of each component within
// it. Components are derived lazily from the offsets rather than copied eagerly.
type URL struct {
	original string
	offsets  Offsets
}

// New constructs a URL marker over original using off. Callers (the detector) are responsible for
// offsets being mutually consistent (each non-absent offset falls within original and respects the
// grammar's fixed delimiters between components).
func New(original string, off Offsets) *URL {
	return &URL{original: original, offsets: off}
}

// OriginalURL returns the exact substring of the source text that the detector matched.
func (u *URL) OriginalURL() string {
	return u.original
}

type field struct {
	offset int
	sepLen int
}

func firstPresentEnd(originalLen int, candidates []field) int {
	for _, f := range candidates {
		if f.offset >= 0 {
			return f.offset - f.sepLen
		}
	}

	return originalLen
}

// Scheme returns the scheme component, or "" if the URL is scheme-relative ("//host/path").
func (u *URL) Scheme() string {
	if u.offsets.Scheme < 0 {
		return ""
	}

	end := firstPresentEnd(len(u.original), []field{
		{u.offsets.Userinfo, 3},
		{u.offsets.Host, 3},
	})

	return u.original[u.offsets.Scheme:end]
}

func (u *URL) userinfo() string {
	if u.offsets.Userinfo < 0 {
		return ""
	}

	end := u.offsets.Host - 1

	return u.original[u.offsets.Userinfo:end]
}

// Username returns the userinfo component up to (not including) a ':', or the whole userinfo if
// there is no password.
func (u *URL) Username() string {
	info := u.userinfo()
	if info == "" {
		return ""
	}

	if idx := strings.IndexByte(info, ':'); idx >= 0 {
		return info[:idx]
	}

	return info
}

// Password returns the userinfo component after a ':', or "" if there is none.
func (u *URL) Password() string {
	info := u.userinfo()
	if info == "" {
		return ""
	}

	if idx := strings.IndexByte(info, ':'); idx >= 0 {
		return info[idx+1:]
	}

	return ""
}

// Host returns the host component: a DNS name, an IPv4 literal, or a bracketed IPv6 literal.
func (u *URL) Host() string {
	if u.offsets.Host < 0 {
		return ""
	}

	end := firstPresentEnd(len(u.original), []field{
		{u.offsets.Port, 1},
		{u.offsets.Path, 0},
		{u.offsets.Query, 1},
		{u.offsets.Fragment, 1},
	})

	return u.original[u.offsets.Host:end]
}

// HostBytes returns the 16-byte address of a host that parses as an IPv4 or IPv6 literal (the
// IPv4-mapped form for an IPv4 host), or nil for a DNS name.
func (u *URL) HostBytes() []byte {
	r, err := host.Normalize(u.Host())
	if err != nil || !r.IsIP {
		return nil
	}

	return r.Bytes[:]
}

func (u *URL) portText() string {
	if u.offsets.Port < 0 {
		return ""
	}

	end := firstPresentEnd(len(u.original), []field{
		{u.offsets.Path, 0},
		{u.offsets.Query, 1},
		{u.offsets.Fragment, 1},
	})

	return u.original[u.offsets.Port:end]
}

// Port returns the numeric port: the explicit port if one was scanned, the scheme's default port
// if the scheme has one, or -1 if neither is available or the scanned port fails to parse.
func (u *URL) Port() int {
	if text := u.portText(); text != "" {
		v, err := strconv.Atoi(text)
		if err != nil {
			return -1
		}

		return v
	}

	if dp, ok := schemes.DefaultPort[strings.ToLower(u.Scheme())]; ok {
		return dp
	}

	return -1
}

// Path returns the path component, including its leading '/', or "/" when the URL has no path.
func (u *URL) Path() string {
	if u.offsets.Path < 0 {
		return "/"
	}

	end := firstPresentEnd(len(u.original), []field{
		{u.offsets.Query, 1},
		{u.offsets.Fragment, 1},
	})

	return u.original[u.offsets.Path:end]
}

// Query returns the query component, not including the leading '?'.
func (u *URL) Query() string {
	if u.offsets.Query < 0 {
		return ""
	}

	end := firstPresentEnd(len(u.original), []field{
		{u.offsets.Fragment, 1},
	})

	return u.original[u.offsets.Query:end]
}

// Fragment returns the fragment component, not including the leading '#'.
func (u *URL) Fragment() string {
	if u.offsets.Fragment < 0 {
		return ""
	}

	return u.original[u.offsets.Fragment:]
}

// FullURL reconstructs scheme://[user[:pass]@]host[:port]path[?query][#fragment], omitting a port
// equal to the scheme's default.
func (u *URL) FullURL() string {
	return u.build(true)
}

// FullURLWithoutFragment is FullURL without a trailing "#fragment".
func (u *URL) FullURLWithoutFragment() string {
	return u.build(false)
}

func (u *URL) build(withFragment bool) string {
	var b strings.Builder

	if scheme := u.Scheme(); scheme != "" {
		b.WriteString(scheme)
		b.WriteString("://")
	} else {
		b.WriteString("//")
	}

	if user := u.Username(); user != "" {
		b.WriteString(user)

		if pass := u.Password(); pass != "" {
			b.WriteByte(':')
			b.WriteString(pass)
		}

		b.WriteByte('@')
	}

	b.WriteString(u.Host())

	if port := u.Port(); port >= 0 {
		if dp, ok := schemes.DefaultPort[strings.ToLower(u.Scheme())]; !ok || dp != port {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(port))
		}
	}

	b.WriteString(u.Path())

	if q := u.Query(); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}

	if withFragment {
		if f := u.Fragment(); f != "" {
			b.WriteByte('#')
			b.WriteString(f)
		}
	}

	return b.String()
}
