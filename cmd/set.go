package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"
)

type setCmd struct {
	fy     string
	entity string
	row    string
	month  string
	value  string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "record an actual amount for a line item and month" }
func (*setCmd) Usage() string {
	return `hb set -row <id> -m <month> -v <amount> [-fy <fiscal-year> | -entity <id>]

  Overwrites one actual value. With -entity the month is a bare cycle
  label like "Apr"; otherwise it is a fiscal month label like "Apr-25".
  A value that does not parse as a whole amount is discarded and the
  previous value is kept.

Usage Examples:
# Record September cook salary.
$ hb set -row cook -m Sep-25 -v 10500

# Record an entity cycle amount.
$ hb set -entity sam7 -row receipts -m Sep -v 12000
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Fiscal year the month belongs to (defaults to the first tracked year).")
	f.StringVar(&c.entity, "entity", "", "Record into this entity's cycle instead of a fiscal year.")
	f.StringVar(&c.row, "row", "", "Line item id.")
	f.StringVar(&c.month, "m", "", "Month label.")
	f.StringVar(&c.value, "v", "", "Amount in whole rupees.")
}

// parseEditAmount applies the edit-cell policy: keep the digits, and
// discard the edit entirely when nothing numeric remains.
func parseEditAmount(s string) (int64, bool) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	var v int64
	for _, r := range digits.String() {
		v = v*10 + int64(r-'0')
	}
	return v, true
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.row == "" || c.month == "" {
		fmt.Fprintln(os.Stderr, "set requires -row and -m")
		return subcommands.ExitUsageError
	}
	v, ok := parseEditAmount(c.value)
	if !ok {
		log.Warn("value is not an amount, keeping the previous value", "value", c.value)
		return subcommands.ExitSuccess
	}

	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.entity != "" {
		if err := s.SetEntityActual(c.entity, c.row, c.month, v); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	} else {
		y, err := resolveYear(s, c.fy)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		s.SetActual(y, c.row, c.month, v)
	}

	if err := saveState(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s %s = %d\n", c.row, c.month, v)
	return subcommands.ExitSuccess
}
