package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebudget/renderer"
)

type overviewCmd struct {
	fy string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the fiscal year dashboard" }
func (*overviewCmd) Usage() string {
	return `hb overview [-fy <fiscal-year>]

  Displays the fiscal year KPIs, the monthly cash flow table and the
  per line item breakdown.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Fiscal year to report on (defaults to the first tracked year).")
}

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	y, err := resolveYear(s, c.fy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.OverviewMarkdown(s, y))
	return subcommands.ExitSuccess
}

type trackerCmd struct {
	fy string
}

func (*trackerCmd) Name() string     { return "tracker" }
func (*trackerCmd) Synopsis() string { return "display the monthly tracker grid" }
func (*trackerCmd) Usage() string {
	return `hb tracker [-fy <fiscal-year>]

  Displays every line item's actuals across the fiscal year's twelve
  months, with totals and variance against budget.
`
}

func (c *trackerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Fiscal year to report on (defaults to the first tracked year).")
}

func (c *trackerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	y, err := resolveYear(s, c.fy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.TrackerMarkdown(s, y))
	return subcommands.ExitSuccess
}
