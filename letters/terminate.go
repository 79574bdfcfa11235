package letters

import "fmt"

// CheckTermination follows the letter-count map from every start in
// [0, limit] and returns ErrCycle if any of them ends up in a cycle that does
// not contain Terminal. Cycles are found with a fast/slow pointer walk so no
// visited set is kept.
func CheckTermination(limit uint64, punctuation bool) error {
	step := func(v uint64) uint64 {
		return uint64(Length(v, punctuation))
	}
	for start := uint64(0); ; start++ {
		slow := step(start)
		fast := step(slow)
		for slow != fast {
			slow = step(slow)
			fast = step(step(fast))
		}
		if !cycleContains(slow, Terminal, step) {
			return fmt.Errorf("%w: start %d enters a cycle at %d", ErrCycle, start, slow)
		}
		if start == limit {
			return nil
		}
	}
}

// VerifyTables checks that every uint64 reaches Terminal. Since every value
// lands in [0, MaxLength] after one step, checking that interval is enough.
func VerifyTables(punctuation bool) error {
	return CheckTermination(uint64(MaxLength(punctuation)), punctuation)
}

func cycleContains(entry, target uint64, step func(uint64) uint64) bool {
	v := entry
	for {
		if v == target {
			return true
		}
		v = step(v)
		if v == entry {
			return false
		}
	}
}
