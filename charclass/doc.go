// Package charclass provides single-code-unit classification predicates used throughout the
// detector, the domain reader, and the canonicalizer. It intentionally stays out of the three core
// subsystems: it is a small, dependency-free leaf that the rest of the module consumes.
package charclass
