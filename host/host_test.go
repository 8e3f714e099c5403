package host_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravensec/urldetector/host"
)

func TestNormalize_Empty(t *testing.T) {
	t.Parallel()

	r, err := host.Normalize("")
	require.NoError(t, err)
	assert.Equal(t, "", r.Text)
	assert.False(t, r.IsIP)
}

func TestNormalize_LowercasesDNSName(t *testing.T) {
	t.Parallel()

	r, err := host.Normalize("WWW.Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", r.Text)
	assert.False(t, r.IsIP)
}

func TestNormalize_IPv4Canonical(t *testing.T) {
	t.Parallel()

	r, err := host.Normalize("0x92.168.1.1")
	require.NoError(t, err)
	assert.True(t, r.IsIP)
	assert.Equal(t, "146.168.1.1", r.Text)
	assert.Equal(t, byte(0xff), r.Bytes[10])
	assert.Equal(t, byte(0xff), r.Bytes[11])
	assert.Equal(t, byte(146), r.Bytes[12])
	assert.Equal(t, byte(168), r.Bytes[13])
}

func TestNormalize_IPv6FullyExpanded(t *testing.T) {
	t.Parallel()

	r, err := host.Normalize("[fefe::]")
	require.NoError(t, err)
	assert.True(t, r.IsIP)
	assert.Equal(t, "[fefe:0:0:0:0:0:0:0]", r.Text)
}

func TestNormalize_IPv6EmbeddedIPv4(t *testing.T) {
	t.Parallel()

	r, err := host.Normalize("[0:ffff::077.0x22.222.11]")
	require.NoError(t, err)
	assert.True(t, r.IsIP)
	assert.Equal(t, "[0:ffff:0:0:0:0:3f22:de0b]", r.Text)
}

func TestNormalize_FoldsExtraDots(t *testing.T) {
	t.Parallel()

	r, err := host.Normalize("www..example...com")
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", r.Text)
}

func TestNormalize_IDNPunycode(t *testing.T) {
	t.Parallel()

	r, err := host.Normalize("xn--fsqu00a.xn--0zwm56d")
	require.NoError(t, err)
	assert.False(t, r.IsIP)
	assert.Equal(t, "xn--fsqu00a.xn--0zwm56d", r.Text)
}
