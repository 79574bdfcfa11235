package letters

// Lengths of the English names used to spell out a number. All tables are
// indexed directly by digit (or by power of one thousand) so that the length
// computation never branches on a lookup.
var (
	// "", "One", "Two", ... "Nine"
	onesLength = [10]int32{0, 3, 3, 5, 4, 4, 3, 5, 5, 4}

	// "Ten", "Eleven", ... "Nineteen"
	teensLength = [10]int32{3, 6, 6, 8, 8, 7, 7, 9, 8, 8}

	// "", "", "Twenty", "Thirty", "Forty", ... "Ninety"
	tensLength = [10]int32{0, 0, 6, 6, 5, 5, 5, 7, 6, 6}

	// "", "Thousand", "Million", ... "Septillion"
	powerLength = [9]int32{0, 8, 7, 7, 8, 11, 11, 10, 10}
)

// lengths that depend on whether punctuation is counted, indexed by 0 (without)
// or 1 (with)
var (
	hundredLength     = [2]int32{7, 8} // "Hundred" vs " Hundred"
	conjunctionLength = [2]int32{3, 5} // "and" vs " and "
	hyphenLength      = [2]int32{0, 1} // "Thirty-Seven"
	spaceLength       = [2]int32{0, 1} // between a group and its power name
	separatorLength   = [2]int32{0, 2} // ", " between groups
)

var (
	onesNames   = [10]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teensNames  = [10]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensNames   = [10]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	powerNames  = [9]string{"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion", "Sextillion", "Septillion"}
	negativeTag = "Negative "
)

// Terminal is the fixed point every chain ends on: "Four" has four letters.
const Terminal = 4

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
