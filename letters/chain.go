package letters

// ChainLength counts the steps it takes for n to reach Terminal when it is
// repeatedly replaced by the length of its name. Four itself has a chain of
// length 1, five (-> 4) has length 2, and 100 -> 10 -> 3 -> 5 -> 4 has length 5
// without punctuation.
//
// There is no cycle detection here. The tables in this package are checked by
// VerifyTables to always reach Terminal.
func ChainLength(n uint64, punctuation bool) int32 {
	length := Length(n, punctuation)
	chain := int32(1)
	for length != Terminal {
		length = Length(uint64(length), punctuation)
		chain++
	}
	if n != Terminal {
		chain++
	}
	return chain
}
