package letters

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLessThanOneThousandLength(t *testing.T) {
	cases := []struct {
		n           uint64
		with, plain int32
	}{
		{0, 0, 0},
		{7, 5, 5},
		{15, 7, 7},
		{21, 10, 9},
		{40, 5, 5},
		{100, 11, 10},
		{101, 19, 16},
		{137, 28, 24}, // One Hundred and Thirty-Seven
		{999, 28, 24},
	}
	for _, c := range cases {
		assert.Equal(t, c.with, LessThanOneThousandLength(c.n, true), "%d with punctuation", c.n)
		assert.Equal(t, c.plain, LessThanOneThousandLength(c.n, false), "%d without punctuation", c.n)
	}

	// only the low three digits count
	assert.Equal(t, LessThanOneThousandLength(137, true), LessThanOneThousandLength(5137, true))
}

func TestLength(t *testing.T) {
	cases := []struct {
		n           uint64
		plain, with int32
	}{
		{0, 4, 4},
		{1, 3, 3},
		{4, 4, 4},
		{13, 8, 8},
		{21, 9, 10},
		{100, 10, 11},
		{101, 16, 19},
		{1000, 11, 12},
		{1001, 14, 17},
		{1_002_000, 21, 25},
		{999_999_999, 87, 105},
		{323_373_373, 95, 113},
		{113_373_373_373, 124, 148},
		{math.MaxInt64, 184, 222},
		{math.MaxUint64, 179, 216},
	}
	for _, c := range cases {
		assert.Equal(t, c.plain, Length(c.n, false), "%d without punctuation", c.n)
		assert.Equal(t, c.with, Length(c.n, true), "%d with punctuation", c.n)
	}
}

func TestLength_MatchesRender(t *testing.T) {
	limit := uint64(200_000)
	samples := 20_000
	if testing.Short() {
		limit = 20_000
		samples = 2_000
	}

	check := func(n uint64) {
		for _, punctuation := range []bool{false, true} {
			want, err := RenderLength(n, punctuation)
			if !assert.NoError(t, err) {
				return
			}
			if got := Length(n, punctuation); int(got) != want {
				name, _ := RenderUnsigned(n)
				assert.Fail(t, fmt.Sprintf("length of %d (%q), punctuation=%t: got %d, want %d", n, name, punctuation, got, want))
			}
		}
	}

	for n := uint64(0); n < limit; n++ {
		check(n)
	}
	for i := 0; i < samples; i++ {
		check(rand.Uint64())
	}
	// groups of zeros between named groups
	for _, n := range []uint64{1_000_000, 1_000_001, 5_000_000_000_000, 7_000_000_000_000_013} {
		check(n)
	}
}

func TestMaxLength(t *testing.T) {
	for _, punctuation := range []bool{false, true} {
		bound := MaxLength(punctuation)
		assert.LessOrEqual(t, Length(math.MaxUint64, punctuation), bound)
		assert.LessOrEqual(t, Length(777_777_777_777_777_777, punctuation), bound)
		for i := 0; i < 1000; i++ {
			assert.LessOrEqual(t, Length(rand.Uint64(), punctuation), bound)
		}
	}
}

func BenchmarkLength(b *testing.B) {
	var sink int32
	for i := 0; i < b.N; i++ {
		sink += Length(uint64(i)*7_919+113_373_373_373, false)
	}
	_ = sink
}
