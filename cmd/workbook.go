package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"

	"homebudget"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full ledger to an xlsx workbook" }
func (*exportCmd) Usage() string {
	return `hb export <file.xlsx>

  Writes one sheet per tracked fiscal year, a net worth sheet, a
  savings goals sheet and one sheet per auxiliary entity.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "export expects exactly one workbook filename")
		return subcommands.ExitUsageError
	}
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	out, err := os.Create(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := homebudget.ExportWorkbook(s, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d fiscal year(s) to %s\n", len(s.Years), f.Arg(0))
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import actuals from an xlsx workbook" }
func (*importCmd) Usage() string {
	return `hb import <file.xlsx>

  Overlays amounts from every "FY <year>" sheet onto the ledger. Rows
  are matched by line item label, columns by month label; cells that do
  not parse keep the previous value. Unknown fiscal years are added to
  the tracked list. Re-running the import on the same file is a no-op.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import expects exactly one workbook filename")
		return subcommands.ExitUsageError
	}
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		log.Error("import failed", "err", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	imported, err := homebudget.ImportWorkbook(s, in)
	if err != nil {
		log.Error("import failed", "err", err)
		return subcommands.ExitFailure
	}
	if err := saveState(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d year(s)\n", imported)
	return subcommands.ExitSuccess
}

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write a fresh seeded state file" }
func (*initCmd) Usage() string {
	return `hb init [-force]

  Creates the state file with the seeded household ledger. Refuses to
  overwrite an existing file unless -force is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Overwrite an existing state file.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*stateFile); err == nil && !c.force {
		fmt.Fprintf(os.Stderr, "state file %q already exists (use -force to overwrite)\n", *stateFile)
		return subcommands.ExitFailure
	}
	if err := saveState(homebudget.DefaultState()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Initialized %s\n", *stateFile)
	return subcommands.ExitSuccess
}
