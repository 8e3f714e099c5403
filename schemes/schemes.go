package schemes

import "strings"

// Recognized is the sorted list of schemes the detector matches as an authority-bearing prefix
// ("scheme://"), case-insensitively, including the percent-encoded-colon spelling of each
// ("http%3a//").
var Recognized = []string{
	`ftp`,
	`ftps`,
	`http`,
	`https`,
}

// DefaultPort maps a recognized scheme to the port a URL in that scheme uses when none is given
// explicitly.
var DefaultPort = map[string]int{
	`ftp`:   21,
	`http`:  80,
	`https`: 443,
}

// IsRecognized reports whether scheme (without "://") is one of Recognized, case-insensitively.
func IsRecognized(scheme string) bool {
	lower := strings.ToLower(scheme)

	for _, s := range Recognized {
		if s == lower {
			return true
		}
	}

	return false
}
