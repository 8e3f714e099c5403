// Package detector implements the top-level scanner: a single forward pass over the input text that
// recognizes URL candidates (with or without a scheme), hands each candidate's host off to the
// domain reader, and, once a host is confirmed, reads whatever authority/path/query/fragment follows
// it. It is the component everything else in this module exists to support.
package detector
