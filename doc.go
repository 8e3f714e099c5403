// Package urldetector finds and parses browser-style URLs embedded in arbitrary text. It wires
// together detector (the scanning state machine), marker (the URL value type), host and path (the
// canonicalizers), and the supplemental domaincomponents parser into the module's public surface.
package urldetector
