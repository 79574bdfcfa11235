package letters

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnsupportedMagnitude is returned when a number has more digit groups than
// there are power-of-one-thousand names.
var ErrUnsupportedMagnitude = errors.New("number exceeds the largest named power of one thousand")

var punctuationMarks = strings.NewReplacer(" ", "", ",", "", "-", "")

// Render spells out n in English, e.g. "One Million, Two Hundred and Three
// Thousand, Four". Negative numbers get a "Negative " prefix.
func Render(n int64) (string, error) {
	if n >= 0 {
		return RenderUnsigned(uint64(n))
	}
	// -math.MinInt64 overflows back to itself, but its uint64 conversion is
	// still the right magnitude
	name, err := RenderUnsigned(uint64(-n))
	if err != nil {
		return "", err
	}
	return negativeTag + name, nil
}

// RenderUnsigned spells out n in English.
func RenderUnsigned(n uint64) (string, error) {
	if n == 0 {
		return "Zero", nil
	}
	groups := make([]string, 0, groupsPerUint64)
	for power := 0; n > 0; power++ {
		group := n % 1000
		n /= 1000
		if group == 0 {
			continue
		}
		if power >= len(powerNames) {
			return "", fmt.Errorf("%w: group %d", ErrUnsupportedMagnitude, power)
		}
		name := lessThanOneThousand(group)
		if power > 0 {
			name += " " + powerNames[power]
		}
		groups = append(groups, name)
	}
	slices.Reverse(groups)
	return strings.Join(groups, ", "), nil
}

// Strip removes the spaces, commas and hyphens from a rendered name. The word
// "and" stays.
func Strip(name string) string {
	return punctuationMarks.Replace(name)
}

// RenderLength is the slow counterpart of Length: it renders n and counts the
// characters of the result.
func RenderLength(n uint64, punctuation bool) (int, error) {
	name, err := RenderUnsigned(n)
	if err != nil {
		return 0, err
	}
	if !punctuation {
		name = Strip(name)
	}
	return len(name), nil
}

func lessThanOneThousand(n uint64) string {
	hundreds := n / 100
	tens := (n / 10) % 10
	ones := n % 10

	var b strings.Builder
	if hundreds > 0 {
		b.WriteString(onesNames[hundreds])
		b.WriteString(" Hundred")
		if tens != 0 || ones != 0 {
			b.WriteString(" and ")
		}
	}
	switch tens {
	case 0:
		b.WriteString(onesNames[ones])
	case 1:
		b.WriteString(teensNames[ones])
	default:
		b.WriteString(tensNames[tens])
		if ones != 0 {
			b.WriteString("-")
			b.WriteString(onesNames[ones])
		}
	}
	return b.String()
}
