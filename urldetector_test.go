package urldetector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravensec/urldetector"
	"github.com/ravensec/urldetector/detector"
)

func TestDetect_FindsURLInProse(t *testing.T) {
	t.Parallel()

	urls := urldetector.Detect("this is a link: www.google.com", detector.Default)
	require.Len(t, urls, 1)
	assert.Equal(t, "www.google.com", urls[0].Host())
}

func TestParseSingle_SingleURL(t *testing.T) {
	t.Parallel()

	u, err := urldetector.ParseSingle("https://example.com/a/b")
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Host())
	assert.Equal(t, "/a/b", u.Path())
}

func TestParseSingle_BareHostWithSingleLevelDomain(t *testing.T) {
	t.Parallel()

	u, err := urldetector.ParseSingle("localhost")
	require.NoError(t, err)
	assert.Equal(t, "localhost", u.Host())
}

func TestParseSingle_NoURLIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := urldetector.ParseSingle("not a url at all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, urldetector.ErrMalformedURL))
}

func TestParseSingle_MultipleURLsIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := urldetector.ParseSingle("http://a.com http://b.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, urldetector.ErrMalformedURL))
}

func TestParseSingle_EncodesLiteralSpace(t *testing.T) {
	t.Parallel()

	u, err := urldetector.ParseSingle("http://example.com/a b")
	require.NoError(t, err)
	assert.Equal(t, "/a%20b", u.Path())
}

func TestNormalize_LowercasesHostAndCollapsesPath(t *testing.T) {
	t.Parallel()

	u, err := urldetector.ParseSingle("http://EXAMPLE.com/a/./b/../c")
	require.NoError(t, err)

	n := urldetector.Normalize(u)
	assert.Equal(t, "example.com", n.Host())
	assert.Equal(t, "/a/c", n.Path())
	assert.Equal(t, "http://example.com/a/c", n.FullURL())
}

func TestNormalize_PreservesQueryAndFragment(t *testing.T) {
	t.Parallel()

	u, err := urldetector.ParseSingle("https://example.com/p?q=1#frag")
	require.NoError(t, err)

	n := urldetector.Normalize(u)
	assert.Equal(t, "q=1", n.Query())
	assert.Equal(t, "frag", n.Fragment())
}

func TestNormalize_Nil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, urldetector.Normalize(nil))
}
