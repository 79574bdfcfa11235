package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"NumberChains/common"
	"NumberChains/letters"
)

/*
Finds the first number with a given letter-count chain length by direct
examination. Every candidate is spelled out in full and its chain followed name
by name, so this is far slower than scan, but it shares nothing with the length
tables that scan relies on and so serves as a check on them for modest ranges.
*/

func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan-simple",
		Short:        "Slow reference search for the first number with a given chain length",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	minString := cmd.Flags().String("min", "0", "first candidate; can use K, M, G, T, P and E as power of ten")
	maxString := cmd.Flags().String("max", "10M", "one past the last candidate")
	target := cmd.Flags().Int32("target", 7, "chain length to search for")
	punctuation := cmd.Flags().Bool("punctuation", false, "count spaces, hyphens and commas")
	verbose := cmd.Flags().BoolP("verbose", "v", false, "verbose output")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		minValue, err := common.DecodeLimit(*minString)
		if err != nil {
			return err
		}
		maxValue, err := common.DecodeLimit(*maxString)
		if err != nil {
			return err
		}
		logger, err := common.NewLogger(*verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		n, found, err := firstWithChain(uint64(minValue), uint64(maxValue), *target, *punctuation, logger)
		if err != nil {
			return err
		}
		if !found {
			_, _ = fmt.Fprintf(out, "no match found in range %d .. %d\n", minValue, maxValue)
			return nil
		}
		name, err := letters.RenderUnsigned(n)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%s   <=>   (%d) gave chain length: %d\n", name, n, *target)
		return nil
	}
	cmd.SetOut(out)
	return cmd
}

// firstWithChain walks [lo, hi) in order and stops at the first number whose
// chain has the target length.
func firstWithChain(lo, hi uint64, target int32, punctuation bool, logger *zap.Logger) (uint64, bool, error) {
	t0 := time.Now()
	for n := lo; n < hi; n++ {
		length, err := letters.ReferenceChainLength(n, punctuation)
		if err != nil {
			return 0, false, fmt.Errorf("chain of %d: %w", n, err)
		}
		if length == target {
			return n, true, nil
		}
		if (n-lo)%1_000_000 == 999_999 {
			rate := float64(n-lo+1) / time.Since(t0).Seconds()
			logger.Debug("candidates searched",
				zap.Uint64("next", n+1),
				zap.Float64("remaining_seconds", float64(hi-n-1)/rate),
			)
		}
	}
	return 0, false, nil
}
