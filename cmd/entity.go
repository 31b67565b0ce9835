package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebudget/renderer"
)

type entityCmd struct {
	id string
}

func (*entityCmd) Name() string     { return "entity" }
func (*entityCmd) Synopsis() string { return "display an auxiliary entity's 12 month cycle" }
func (*entityCmd) Usage() string {
	return `hb entity [-id <entity-id>]

  Displays an auxiliary bookkeeping entity (a side account with its own
  line items). Without -id, displays all of them.
`
}

func (c *entityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Entity id (e.g. tin_huf, sam7).")
}

func (c *entityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.id != "" {
		e := s.Entity(c.id)
		if e == nil {
			fmt.Fprintf(os.Stderr, "unknown entity %q\n", c.id)
			return subcommands.ExitUsageError
		}
		printMarkdown(renderer.EntityMarkdown(e))
		return subcommands.ExitSuccess
	}
	for _, e := range s.Entities {
		printMarkdown(renderer.EntityMarkdown(e))
	}
	return subcommands.ExitSuccess
}

type addYearCmd struct{}

func (*addYearCmd) Name() string     { return "add-year" }
func (*addYearCmd) Synopsis() string { return "start tracking the next fiscal year" }
func (*addYearCmd) Usage() string {
	return `hb add-year

  Tracks the successor of the last tracked fiscal year, seeding its
  actuals from the catalog's effective budgets.
`
}

func (*addYearCmd) SetFlags(f *flag.FlagSet) {}

func (c *addYearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	y, err := s.AddYear()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveState(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Now tracking FY %s\n", y)
	return subcommands.ExitSuccess
}
