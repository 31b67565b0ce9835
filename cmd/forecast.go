package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"homebudget"
	"homebudget/renderer"
)

type forecastCmd struct {
	months  int
	opening string
	extra   string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "display the rolling cash flow forecast" }
func (*forecastCmd) Usage() string {
	return `hb forecast [-months <n>] [-opening <amount>] [-extra <amount>]

  Projects the recurring income and expense rules forward from the
  current month, seeded at the opening bank balance. -opening and
  -extra update the stored knobs first; -extra is the monthly amount
  set aside for goals, carried as an extra expense.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", homebudget.ForecastHorizon, "Number of months to project.")
	f.StringVar(&c.opening, "opening", "", "Opening bank balance to store and use.")
	f.StringVar(&c.extra, "extra", "", "Extra monthly saving to store and use.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months <= 0 {
		fmt.Fprintln(os.Stderr, "forecast needs a positive number of months")
		return subcommands.ExitUsageError
	}
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	dirty := false
	if c.opening != "" {
		v, ok := parseEditAmount(c.opening)
		if !ok {
			fmt.Fprintf(os.Stderr, "opening balance %q is not an amount\n", c.opening)
			return subcommands.ExitUsageError
		}
		s.OpeningBalance = v
		dirty = true
	}
	if c.extra != "" {
		v, ok := parseEditAmount(c.extra)
		if !ok {
			fmt.Fprintf(os.Stderr, "extra saving %q is not an amount\n", c.extra)
			return subcommands.ExitUsageError
		}
		s.ExtraSaving = v
		dirty = true
	}
	if dirty {
		if err := saveState(s); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	forecast := s.DefaultForecast(c.months, time.Now())
	printMarkdown(renderer.ForecastMarkdown(s.OpeningBalance, forecast))
	return subcommands.ExitSuccess
}
