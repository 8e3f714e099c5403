// Package path normalizes a URL path: iterative percent-decoding, dot-segment collapse, and
// re-encoding. Normalize is idempotent — running it twice yields the same result as running it
// once.
package path
