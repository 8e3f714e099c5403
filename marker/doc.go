// Package marker defines URL, the detector's output value: a set of offsets into the original
// scanned text plus lazily derived accessors for each component, rather than a set of copied
// substrings.
package marker
