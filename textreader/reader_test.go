package textreader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravensec/urldetector/textreader"
)

func TestReader_ReadAdvancesAndNormalizesWhitespace(t *testing.T) {
	t.Parallel()

	r := textreader.New("a\tb")

	c, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 'a', c)

	c, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, ' ', c, "tab normalizes to a single ASCII space")
}

func TestReader_PeekDoesNotAdvance(t *testing.T) {
	t.Parallel()

	r := textreader.New("abc")

	s, err := r.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, "ab", s)
	assert.Equal(t, 0, r.Position())
}

func TestReader_PeekAtOutOfRange(t *testing.T) {
	t.Parallel()

	r := textreader.New("ab")

	_, err := r.PeekAt(5)
	assert.ErrorIs(t, err, textreader.ErrOutOfRange)
}

func TestReader_SeekBackwardSpendsBacktrackBudget(t *testing.T) {
	t.Parallel()

	r := textreader.New("abc")

	_, _ = r.Read()
	_, _ = r.Read()
	_, _ = r.Read()

	require.NoError(t, r.Seek(0))
	assert.Equal(t, 0, r.Position())
}

func TestReader_BacktrackLimitExceeded(t *testing.T) {
	t.Parallel()

	r := textreader.New("ab")

	var err error

	for i := 0; i < 100; i++ {
		_, _ = r.Read()

		if err = r.GoBack(); err != nil {
			break
		}

		_, _ = r.Read()
	}

	require.Error(t, err)

	var limitErr *textreader.ErrBacktrackLimitExceeded

	assert.True(t, errors.As(err, &limitErr))
}

func TestReader_EOF(t *testing.T) {
	t.Parallel()

	r := textreader.New("a")

	_, err := r.Read()
	require.NoError(t, err)
	assert.True(t, r.EOF())

	_, err = r.Read()
	assert.ErrorIs(t, err, textreader.ErrOutOfRange)
}
