// Package textreader implements the shared cursor the detector and the domain reader drive in
// lock-step: a forward reader over Unicode code units with one-position pushback, absolute seek, and
// a budgeted backtrack counter that turns pathological ping-pong inputs into a bounded failure
// instead of a live-lock.
package textreader

import (
	"errors"
	"fmt"

	"github.com/ravensec/urldetector/charclass"
)

// ErrOutOfRange is returned by Peek and PeekAt when the requested position is outside the input.
var ErrOutOfRange = errors.New("textreader: position out of range")

// ErrBacktrackLimitExceeded is returned once the cumulative backward movement of a Reader exceeds
// its budget (10 times the input length). It is a liveness guard, not a correctness check: a
// well-formed scanner never approaches the limit on real input.
type ErrBacktrackLimitExceeded struct {
	// Region is a substring of the input surrounding the position where the budget was exceeded, at
	// least 20 code units long when the input has that many remaining, clamped to the available tail
	// otherwise.
	Region string
}

func (e *ErrBacktrackLimitExceeded) Error() string {
	return fmt.Sprintf("textreader: backtrack limit exceeded near %q", e.Region)
}

// minRegionLength is the minimum length of the offending-region substring carried by
// ErrBacktrackLimitExceeded.
const minRegionLength = 20

// Reader is a forward cursor over a string's Unicode code units (runes), with pushback, absolute
// seek, and a bounded backtrack budget. It is not safe for concurrent use.
type Reader struct {
	runes []rune
	pos   int

	backtrackBudget int
	backtrackSpent  int
	exhausted       bool
}

// New constructs a Reader over s.
func New(s string) *Reader {
	runes := []rune(s)

	return &Reader{
		runes:           runes,
		backtrackBudget: 10 * len(runes),
	}
}

// Position returns the current zero-based cursor position.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the total number of code units in the input.
func (r *Reader) Len() int {
	return len(r.runes)
}

// EOF reports whether the cursor has reached the end of the input.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.runes)
}

// CanRead reports whether n more code units are available to read from the current position.
func (r *Reader) CanRead(n int) bool {
	return r.pos+n <= len(r.runes)
}

// Read advances the cursor by one code unit and returns it. Whitespace (space, tab, CR, LF) is
// normalized to a single ASCII space. Read returns ErrOutOfRange at EOF.
func (r *Reader) Read() (rune, error) {
	if r.EOF() {
		return 0, ErrOutOfRange
	}

	c := r.runes[r.pos]
	r.pos++

	if charclass.IsWhitespace(c) {
		c = ' '
	}

	return c, nil
}

// Peek returns, without advancing the cursor, the next n code units as a string. It fails if fewer
// than n units remain.
func (r *Reader) Peek(n int) (string, error) {
	if !r.CanRead(n) {
		return "", ErrOutOfRange
	}

	return string(r.runes[r.pos : r.pos+n]), nil
}

// PeekAt returns the code unit at current position + offset, without advancing the cursor.
func (r *Reader) PeekAt(offset int) (rune, error) {
	i := r.pos + offset

	if i < 0 || i >= len(r.runes) {
		return 0, ErrOutOfRange
	}

	return r.runes[i], nil
}

// Seek moves the cursor to an absolute position. Moving backward consumes from the backtrack budget
// and may fail with ErrBacktrackLimitExceeded.
func (r *Reader) Seek(pos int) error {
	if pos < 0 {
		pos = 0
	}

	if pos > len(r.runes) {
		pos = len(r.runes)
	}

	if pos < r.pos {
		if err := r.spendBacktrack(r.pos - pos); err != nil {
			return err
		}
	}

	r.pos = pos

	return nil
}

// GoBack moves the cursor back by one code unit, consuming one unit of the backtrack budget.
func (r *Reader) GoBack() error {
	if r.pos == 0 {
		return nil
	}

	if err := r.spendBacktrack(1); err != nil {
		return err
	}

	r.pos--

	return nil
}

func (r *Reader) spendBacktrack(n int) error {
	if r.exhausted {
		return r.backtrackError()
	}

	r.backtrackSpent += n

	if r.backtrackSpent > r.backtrackBudget {
		r.exhausted = true

		return r.backtrackError()
	}

	return nil
}

func (r *Reader) backtrackError() error {
	end := r.pos + minRegionLength
	if end > len(r.runes) {
		end = len(r.runes)
	}

	start := r.pos
	if start > end {
		start = end
	}

	return &ErrBacktrackLimitExceeded{Region: string(r.runes[start:end])}
}
