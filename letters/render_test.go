package letters

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	cases := map[int64]string{
		0:         "Zero",
		7:         "Seven",
		19:        "Nineteen",
		40:        "Forty",
		137:       "One Hundred and Thirty-Seven",
		500:       "Five Hundred",
		1000:      "One Thousand",
		1001:      "One Thousand, One",
		1_002_000: "One Million, Two Thousand",
		-42:       "Negative Forty-Two",
		323_373_373: "Three Hundred and Twenty-Three Million, Three Hundred and Seventy-Three Thousand, " +
			"Three Hundred and Seventy-Three",
	}
	for n, want := range cases {
		got, err := Render(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRender_Extremes(t *testing.T) {
	name, err := Render(math.MinInt64)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "Negative Nine Quintillion, Two Hundred and Twenty-Three Quadrillion"), name)
	assert.True(t, strings.HasSuffix(name, "Seven Hundred and Seventy-Five Thousand, Eight Hundred and Eight"), name)

	name, err = RenderUnsigned(math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, "Eighteen Quintillion, Four Hundred and Forty-Six Quadrillion, "+
		"Seven Hundred and Forty-Four Trillion, Seventy-Three Billion, Seven Hundred and Nine Million, "+
		"Five Hundred and Fifty-One Thousand, Six Hundred and Fifteen", name)
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "OneHundredandThirtySeven", Strip("One Hundred and Thirty-Seven"))
	assert.Equal(t, "OneMillionTwoThousand", Strip("One Million, Two Thousand"))

	n, err := RenderLength(137, false)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = RenderLength(137, true)
	require.NoError(t, err)
	assert.Equal(t, 28, n)
}
