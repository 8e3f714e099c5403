// Package host normalizes a detected host into a canonical form: IDNA-to-ASCII for Unicode
// labels, lowercasing, percent-decoding, IPv4/IPv6 canonical textual form, and a 16-byte address
// representation for hosts that parse as an IP literal.
package host
