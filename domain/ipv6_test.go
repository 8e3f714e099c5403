package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravensec/urldetector/domain"
)

func TestParseIPv6Literal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   [8]uint16
		wantOK bool
	}{
		{
			name:   "all zero compressed",
			input:  "[fefe::]",
			want:   [8]uint16{0xfefe, 0, 0, 0, 0, 0, 0, 0},
			wantOK: true,
		},
		{
			name:   "embedded ipv4 mixed base",
			input:  "[0:ffff::077.0x22.222.11]",
			want:   [8]uint16{0, 0xffff, 0, 0, 0, 0, 0x3f22, 0xde0b},
			wantOK: true,
		},
		{
			name:   "loopback",
			input:  "[::1]",
			want:   [8]uint16{0, 0, 0, 0, 0, 0, 0, 1},
			wantOK: true,
		},
		{
			name:   "fully expanded",
			input:  "[2001:db8:0:0:0:0:2:1]",
			want:   [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 2, 1},
			wantOK: true,
		},
		{name: "missing brackets", input: "::1", wantOK: false},
		{name: "triple colon", input: "[:::1]", wantOK: false},
		{name: "double double-colon", input: "[1::2::3]", wantOK: false},
		{name: "bad hex section", input: "[gggg::1]", wantOK: false},
		{name: "too many sections", input: "[1:2:3:4:5:6:7:8:9]", wantOK: false},
		{
			name:   "zone index",
			input:  "[fe80::1%eth0]",
			want:   [8]uint16{0xfe80, 0, 0, 0, 0, 0, 0, 1},
			wantOK: true,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := domain.ParseIPv6Literal(tc.input)

			assert.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
