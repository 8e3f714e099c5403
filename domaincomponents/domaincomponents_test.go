package domaincomponents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravensec/urldetector/domaincomponents"
)

func TestParse_WithSubdomain(t *testing.T) {
	t.Parallel()

	p := domaincomponents.New()

	d := p.Parse("www.example.com")

	assert.Equal(t, "www", d.Subdomain)
	assert.Equal(t, "example", d.Root)
	assert.Equal(t, "com", d.TopLevel)
	assert.Equal(t, "www.example.com", d.String())
}

func TestParse_WithoutSubdomain(t *testing.T) {
	t.Parallel()

	p := domaincomponents.New()

	d := p.Parse("example.com")

	assert.Equal(t, "", d.Subdomain)
	assert.Equal(t, "example", d.Root)
	assert.Equal(t, "com", d.TopLevel)
}

func TestParse_MultiLabelTLD(t *testing.T) {
	t.Parallel()

	p := domaincomponents.New()

	d := p.Parse("www.example.co.uk")

	assert.Equal(t, "www", d.Subdomain)
	assert.Equal(t, "example", d.Root)
	assert.Equal(t, "co.uk", d.TopLevel)
}

func TestParse_UnknownTLD(t *testing.T) {
	t.Parallel()

	p := domaincomponents.New()

	d := p.Parse("example.invalidtld")

	assert.Equal(t, "", d.Subdomain)
	assert.Equal(t, "example.invalidtld", d.Root)
	assert.Equal(t, "", d.TopLevel)
}

func TestParse_CustomTLDs(t *testing.T) {
	t.Parallel()

	p := domaincomponents.New(domaincomponents.WithTLDs("internal"))

	d := p.Parse("service.internal")

	assert.Equal(t, "", d.Subdomain)
	assert.Equal(t, "service", d.Root)
	assert.Equal(t, "internal", d.TopLevel)
}
