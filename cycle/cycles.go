package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"NumberChains/common"
	"NumberChains/letters"
)

/*
Checks that every letter-count chain ends at four and tabulates how chain
lengths are distributed over a range. For each length it shows the first number
with that length and how many numbers below the limit have it. The first rows
are the seeds for the longer searches done by scan.
*/
func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// Distribution is the export written with --json.
type Distribution struct {
	Limit       uint64        `json:"limit" yaml:"limit"`
	Punctuation bool          `json:"punctuation" yaml:"punctuation"`
	Longest     int32         `json:"longest_name" yaml:"longest_name"` // letters in the longest name below Limit
	MaxLength   int32         `json:"max_length" yaml:"max_length"`     // bound over every uint64
	Chains      []ChainCounts `json:"chains" yaml:"chains"`
}

type ChainCounts struct {
	Length int32  `json:"length" yaml:"length"`
	First  uint64 `json:"first" yaml:"first"`
	Count  uint64 `json:"count" yaml:"count"`
}

func newCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cycles",
		Short:        "Verify chain termination and tabulate chain lengths",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	limitString := cmd.Flags().String("limit", "1M", "tabulate [0, limit); can use K, M, G, T, P and E as power of ten")
	punctuation := cmd.Flags().Bool("punctuation", false, "count spaces, hyphens and commas")
	export := cmd.Flags().String("json", "", "also write the table to this JSON file")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		limit, err := common.DecodeLimit(*limitString)
		if err != nil {
			return err
		}
		if err := letters.CheckTermination(uint64(limit), *punctuation); err != nil {
			return err
		}
		d := distribution(uint64(limit), *punctuation)

		p := message.NewPrinter(language.English)
		_, _ = p.Fprintf(out, "every number reaches four; chains below %d, longest name %d letters (bound %d)\n", d.Limit, d.Longest, d.MaxLength)
		_, _ = fmt.Fprintf(out, "%6s %20s %20s\n", "chain", "first", "count")
		for _, c := range d.Chains {
			_, _ = p.Fprintf(out, "%6d %20d %20d\n", c.Length, c.First, c.Count)
		}
		if *export != "" {
			return common.WriteReport(*export, "json", d)
		}
		return nil
	}
	cmd.SetOut(out)
	return cmd
}

func distribution(limit uint64, punctuation bool) Distribution {
	d := Distribution{
		Limit:       limit,
		Punctuation: punctuation,
		MaxLength:   letters.MaxLength(punctuation),
	}
	for n := uint64(0); n < limit; n++ {
		d.Longest = max(d.Longest, letters.Length(n, punctuation))
		length := letters.ChainLength(n, punctuation)
		for int(length) > len(d.Chains) {
			d.Chains = append(d.Chains, ChainCounts{Length: int32(len(d.Chains) + 1)})
		}
		c := &d.Chains[length-1]
		if c.Count == 0 {
			c.First = n
		}
		c.Count++
	}
	return d
}
