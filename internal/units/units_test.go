package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.0", "1000000000000000000"},
		{"1", "1000000000000000000"},
		{"0", "0"},
		{"0.5", "500000000000000000"},
		{".5", "500000000000000000"},
		{"1.", "1000000000000000000"},
		{"1.2345", "1234500000000000000"},
		{"0.000000000000000001", "1"},
		{"123456789.987654321", "123456789987654321000000000"},
		{" 2.5 ", "2500000000000000000"},
	}
	for _, tt := range tests {
		got, err := ToBaseUnits(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestToBaseUnitsRejects(t *testing.T) {
	bad := []string{
		"",
		".",
		"-1",
		"+1",
		"1.2.3",
		"1,5",
		"abc",
		"0x10",
		"1e18",
		"0.0000000000000000001", // 19 fractional digits
	}
	for _, in := range bad {
		_, err := ToBaseUnits(in)
		require.Error(t, err, "input %q", in)
		var convErr *ConversionError
		assert.ErrorAs(t, err, &convErr, "input %q", in)
	}
}

func TestFromBaseUnits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1000000000000000000", "1"},
		{"1234500000000000000", "1.2345"},
		{"1", "0.000000000000000001"},
		{"0", "0"},
		{"500000000000000000", "0.5"},
		{"123456789987654321000000000", "123456789.987654321"},
	}
	for _, tt := range tests {
		got, err := FromBaseUnits(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFromBaseUnitsRejects(t *testing.T) {
	for _, in := range []string{"", "-1", "1.5", "0x10", "abc"} {
		_, err := FromBaseUnits(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestRoundTrip(t *testing.T) {
	// Any amount exactly representable within 18 fractional digits must
	// survive the round trip up to trailing-zero trimming.
	amounts := []struct{ in, canonical string }{
		{"1.5", "1.5"},
		{"1.500", "1.5"},
		{"0.000000000000000001", "0.000000000000000001"},
		{"42", "42"},
		{"42.0", "42"},
		{"0.1", "0.1"},
		{"999999.999999999999999999", "999999.999999999999999999"},
	}
	for _, a := range amounts {
		base, err := ToBaseUnits(a.in)
		require.NoError(t, err)
		back, err := FromBaseUnits(base)
		require.NoError(t, err)
		assert.Equal(t, a.canonical, back, "round trip of %q", a.in)
	}
}
