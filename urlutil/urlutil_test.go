package urlutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravensec/urldetector/urlutil"
)

func TestDecode_SimpleEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%", urlutil.Decode("%25"))
}

func TestDecode_NestedPendingPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%", urlutil.Decode("%25%32%35"))
}

func TestDecode_LeavesNonHexAlone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "100% done", urlutil.Decode("100% done"))
}

func TestStripSpecials_RemovesWhitespaceAndSpace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab", urlutil.StripSpecials("a \tb\r\n"))
}

func TestEncode_EscapesHashAndPercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a%23b%25c", urlutil.Encode("a#b%c"))
}

func TestEncode_LeavesPrintableASCIIAlone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc-123", urlutil.Encode("abc-123"))
}

func TestFoldExtraDots_CollapsesAndTrims(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.b.c", urlutil.FoldExtraDots("..a...b.c.."))
}

func TestDecode_IsIdempotentOnDecodedText(t *testing.T) {
	t.Parallel()

	once := urlutil.Decode("%2561")
	twice := urlutil.Decode(once)
	assert.Equal(t, once, twice)
}
