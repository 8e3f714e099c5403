package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravensec/urldetector/domain"
)

func TestParseIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   [4]byte
		wantOK bool
	}{
		{name: "dotted decimal", input: "192.168.10.1", want: [4]byte{192, 168, 10, 1}, wantOK: true},
		{name: "dotted mixed base", input: "0x92.168.1.1", want: [4]byte{146, 168, 1, 1}, wantOK: true},
		{name: "whole number", input: "3279880203", want: [4]byte{195, 127, 0, 11}, wantOK: true},
		{name: "two dots invalid", input: "1.1.1", wantOK: false},
		{name: "four dots invalid", input: "1.1.1.1.1", wantOK: false},
		{name: "octet overflow", input: "0.0.0.256", wantOK: false},
		{name: "last octet overflow", input: "255.255.255.256", wantOK: false},
		{name: "three dots boundary", input: "255.255.255.255", want: [4]byte{255, 255, 255, 255}, wantOK: true},
		{name: "whole number below minimum", input: "16843007", wantOK: false},
		{name: "empty part", input: "1..1.1", wantOK: false},
		{name: "not numeric", input: "a.b.c.d", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := domain.ParseIPv4(tc.input)

			assert.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
