// Package domaincomponents splits an already-validated host (as produced by the domain reader or a
// marker's Host accessor) into its subdomain, root label, and top-level label, using a suffix-array
// lookup against the known TLD lists in tlds.
//
// This is a supplemental convenience on top of detection and normalization: the detector and host
// normalizer never need a domain broken into these parts, but callers that want to group detected
// URLs by registrable domain do.
package domaincomponents
