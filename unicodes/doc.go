// Package unicodes provides the small set of Unicode constants that the domain reader and the host
// normalizer need to behave like a browser rather than a strict RFC 3986 parser: the non-ASCII dot
// variants accepted inside a hostname, and the code-point boundary above which a rune is treated as
// "international" rather than opaque ASCII.
//
// Unlike the large, autogenerated character-class ranges this package once held, these constants are
// small, fixed, and hand-maintained: the set of dot look-alikes a browser's address bar recognizes
// does not grow with each Unicode release.
package unicodes
