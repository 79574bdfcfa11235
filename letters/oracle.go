// Package letters counts the characters in the English names of numbers and
// follows the chain n -> len(name(n)) down to its fixed point, four.
//
// The counting functions work directly on the digit groups of a number and
// never build a string. Render and ReferenceChain do build strings and exist
// for display and for checking the counting functions against.
package letters

// groupsPerUint64 is the number of base-1000 digit groups in the largest uint64
// (18,446,744,073,709,551,615).
const groupsPerUint64 = 7

// LessThanOneThousandLength returns the length of the English name of a
// three-digit group, e.g. 28 for "One Hundred and Thirty-Seven" or 24 for
// "OneHundredandThirtySeven". Only the low three decimal digits of n are used.
// Zero has an empty name here since it only ever appears as part of a larger
// number.
func LessThanOneThousandLength(n uint64, punctuation bool) int32 {
	p := flag(punctuation)
	n %= 1000
	hundreds := n / 100
	tens := (n / 10) % 10
	ones := n % 10

	length := int32(0)
	if hundreds > 0 {
		length += onesLength[hundreds] + hundredLength[p]
		if tens != 0 || ones != 0 {
			length += conjunctionLength[p]
		}
	}
	switch tens {
	case 0:
		length += onesLength[ones]
	case 1:
		length += teensLength[ones]
	default:
		length += tensLength[tens]
		if ones != 0 {
			length += hyphenLength[p] + onesLength[ones]
		}
	}
	return length
}

// Length returns the number of characters in the English name of n. With
// punctuation, spaces, hyphens and the ", " between groups are counted. Zero
// has length 4 ("Zero") so that chains starting at zero end immediately.
func Length(n uint64, punctuation bool) int32 {
	if n == 0 {
		return Terminal
	}
	p := flag(punctuation)

	total := int32(0)
	named := 0
	for power := 0; n > 0; power++ {
		group := n % 1000
		n /= 1000
		if group == 0 {
			continue
		}
		total += LessThanOneThousandLength(group, punctuation) + powerLength[power]
		if power > 0 {
			total += spaceLength[p]
		}
		if named > 0 {
			total += separatorLength[p]
		}
		named++
	}
	return total
}

// MaxLength is an upper bound on Length over every uint64. Any chain enters
// [0, MaxLength] after its first step.
func MaxLength(punctuation bool) int32 {
	p := flag(punctuation)
	widest := int32(0)
	for group := uint64(1); group < 1000; group++ {
		widest = max(widest, LessThanOneThousandLength(group, punctuation))
	}
	bound := int32(0)
	for power := 0; power < groupsPerUint64; power++ {
		bound += widest + powerLength[power] + spaceLength[p] + separatorLength[p]
	}
	return bound
}
