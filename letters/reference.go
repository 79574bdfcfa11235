package letters

import (
	"errors"
	"fmt"
)

// ErrCycle means a chain came back to a value it had already visited without
// passing through Terminal.
var ErrCycle = errors.New("letter-count chain cycles without reaching four")

// ReferenceChain follows the chain from n by rendering every value and
// counting the characters of its name. The result starts with n and ends with
// Terminal. It is much slower than ChainLength and is meant for checking it.
func ReferenceChain(n uint64, punctuation bool) ([]uint64, error) {
	chain := []uint64{n}
	seen := map[uint64]bool{n: true}
	for v := n; ; {
		length, err := RenderLength(v, punctuation)
		if err != nil {
			return chain, err
		}
		next := uint64(length)
		chain = append(chain, next)
		if next == Terminal {
			return chain, nil
		}
		if seen[next] {
			return chain, fmt.Errorf("%w: %v", ErrCycle, chain)
		}
		seen[next] = true
		v = next
	}
}

// ReferenceChainLength applies the counting convention of ChainLength to
// ReferenceChain.
func ReferenceChainLength(n uint64, punctuation bool) (int32, error) {
	chain, err := ReferenceChain(n, punctuation)
	if err != nil {
		return 0, err
	}
	steps := int32(len(chain) - 1)
	if n != Terminal {
		steps++
	}
	return steps, nil
}
