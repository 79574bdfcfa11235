package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"NumberChains/common"
	"NumberChains/letters"
	"NumberChains/search"
)

/*
Searches a range of integers for the smallest one whose letter-count chain has
a given length. Each number is replaced by the number of letters in its English
name until the chain reaches four, which names itself. Candidates are examined a
batch at a time, in parallel when more than one CPU is available, so that very
large ranges can be covered with modest memory.

With the defaults this finds the first number with a chain of length 8 when
spaces and punctuation are not counted, 113,373,373,373.
*/

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newCommand(out io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "scan",
		Short:        "Find the smallest number with a given letter-count chain length",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			cpuProfile, _ := cmd.Flags().GetString("cpuprofile")
			quiet, _ := cmd.Flags().GetBool("quiet")
			return run(cmd.Context(), v, configFile, cpuProfile, quiet, out)
		},
	}
	common.RegisterFlags(cmd, v)
	cmd.Flags().String("cpuprofile", "", "write cpu profile to file")
	cmd.Flags().BoolP("quiet", "q", false, "no per-batch progress lines")
	cmd.SetOut(out)
	return cmd
}

func run(ctx context.Context, v *viper.Viper, configFile, cpuProfile string, quiet bool, out io.Writer) error {
	cfg, err := common.Load(v, configFile)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	kind, err := cfg.BackendKind()
	if err != nil {
		return err
	}

	logger, err := common.NewLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer func(f *os.File) {
			_ = f.Close()
		}(f)
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	ev, err := search.Probe(kind, cfg.Workers, logger)
	if err != nil {
		return err
	}
	orchestrator, err := search.New(settings, ev, logger)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	var obs search.Observer
	if !quiet {
		obs = progressPrinter(p, out, settings)
	}

	res, runErr := orchestrator.Run(ctx, obs)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	_, _ = fmt.Fprintln(out, summary(p, res))
	_, _ = fmt.Fprintln(out, answer(p, res))

	if cfg.Report.Path != "" {
		if err := common.WriteReport(cfg.Report.Path, cfg.Report.Format, res); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", cfg.Report.Path), zap.String("format", cfg.Report.Format))
	}
	return runErr
}

// progressPrinter reports each batch the way the search has always been
// watched: the window, the running percentage and any matches.
func progressPrinter(p *message.Printer, out io.Writer, settings search.Settings) search.Observer {
	return search.ObserverFunc(func(pr search.Progress) {
		_, _ = p.Fprintf(out, "%8s..%-8s %6s%% %14.0f/s  %s",
			common.FormatLimit(pr.Window.Start),
			common.FormatLimit(pr.Window.End()),
			pr.Percent.StringFixed(2),
			pr.Rate(settings.Min),
			pr.State,
		)
		if len(pr.Matches) > 0 {
			_, _ = p.Fprintf(out, "  %d matches, first %d", len(pr.Matches), pr.Matches[0])
			if pr.Dropped > 0 {
				_, _ = p.Fprintf(out, " (%d more not kept)", pr.Dropped)
			}
		}
		_, _ = fmt.Fprintln(out)
	})
}

func summary(p *message.Printer, res search.Result) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Setting", "Value"})
	t.AppendRows([]table.Row{
		{"run", res.RunID},
		{"backend", res.Backend},
		{"range", p.Sprintf("%d .. %d", res.Min, res.Max)},
		{"chain length", res.ChainLength},
		{"punctuation", res.Punctuation},
		{"batches", p.Sprintf("%d", res.Batches)},
		{"candidates", p.Sprintf("%d", res.Candidates)},
		{"matches", p.Sprintf("%d", res.Matches)},
		{"covered", res.Percent.StringFixed(2) + "%"},
		{"elapsed", res.Elapsed.Round(time.Millisecond).String()},
	})
	if res.Stopped {
		t.AppendFooter(table.Row{"", "stopped at first match"})
	}
	return t.Render()
}

func answer(p *message.Printer, res search.Result) string {
	if !res.Found {
		return p.Sprintf("no match found in range %d .. %d", res.Min, res.Max)
	}
	name, err := letters.Render(res.Best)
	if err != nil {
		name = "?"
	}
	return fmt.Sprintf("%s   <=>   (%d) gave chain length: %d", name, res.Best, res.ChainLength)
}
