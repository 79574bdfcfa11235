package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLimit(t *testing.T) {
	cases := map[string]int64{
		"0":                   0,
		"10000":               10_000,
		"113_373_373_373":     113_373_373_373,
		"1_000K":              1_000_000,
		"10M":                 10_000_000,
		"113G":                113_000_000_000,
		"2T":                  2_000_000_000_000,
		"5KM":                 5_000_000_000,
		" 7P ":                7_000_000_000_000_000,
		"9E":                  9_000_000_000_000_000_000,
		"9223372036854775807": math.MaxInt64,
	}
	for in, want := range cases {
		got, err := DecodeLimit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDecodeLimit_Errors(t *testing.T) {
	for _, in := range []string{"", "ten", "10X", "-5", "1.5G", "10E", "9223372036854775808", "G"} {
		_, err := DecodeLimit(in)
		assert.ErrorIs(t, err, ErrInvalidLimit, in)
	}
}

func TestFormatLimit(t *testing.T) {
	assert.Equal(t, "999", FormatLimit(999))
	assert.Equal(t, "10.0M", FormatLimit(10_000_000))
	assert.Equal(t, "113.4G", FormatLimit(113_373_373_373))
	assert.Equal(t, "2.5T", FormatLimit(2_500_000_000_000))
	assert.Equal(t, "9223.4P", FormatLimit(math.MaxInt64))
}
