package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebudget/renderer"
)

type networthCmd struct {
	fy       string
	setAsset string
	setLiab  string
	value    string
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display or update the net worth snapshot" }
func (*networthCmd) Usage() string {
	return `hb networth [-fy <fiscal-year>] [-set-asset <id> -v <amount>] [-set-liab <id> -v <amount>]

  Displays assets, liabilities, the derived net worth and a projection
  at the current monthly surplus. With -set-asset or -set-liab updates
  one value first.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Fiscal year whose surplus drives the projection.")
	f.StringVar(&c.setAsset, "set-asset", "", "Asset id to update.")
	f.StringVar(&c.setLiab, "set-liab", "", "Liability id to update.")
	f.StringVar(&c.value, "v", "", "New value in whole rupees.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.setAsset != "" || c.setLiab != "" {
		v, ok := parseEditAmount(c.value)
		if !ok {
			fmt.Fprintf(os.Stderr, "value %q is not an amount\n", c.value)
			return subcommands.ExitUsageError
		}
		switch {
		case c.setAsset != "":
			if !s.SetAssetValue(c.setAsset, v) {
				fmt.Fprintf(os.Stderr, "unknown asset %q\n", c.setAsset)
				return subcommands.ExitUsageError
			}
		case c.setLiab != "":
			if !s.SetLiabilityValue(c.setLiab, v) {
				fmt.Fprintf(os.Stderr, "unknown liability %q\n", c.setLiab)
				return subcommands.ExitUsageError
			}
		}
		if err := saveState(s); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	y, err := resolveYear(s, c.fy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.NetWorthMarkdown(s, y))
	return subcommands.ExitSuccess
}
