// Package schemes holds the small set of URL schemes the detector recognizes as an authority-bearing
// prefix, plus the default port for each.
//
// Unlike a general-purpose scheme registry, this package does not attempt to list every IANA-assigned
// or common unofficial scheme: the detector only ever needs to recognize the prefixes that introduce
// an authority component ("scheme://"), and the marker only ever needs a default port for the schemes
// it can produce.
//
// References:
// - IANA Registry: https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
package schemes
