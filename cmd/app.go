// Package cmd implements the CLI application to manage the household
// cash-flow ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/subcommands"

	"homebudget"
	"homebudget/fiscal"
)

// Commands lists every subcommand. A main package registers each of
// them and executes the user-selected one.
var Commands = []subcommands.Command{
	&overviewCmd{},
	&trackerCmd{},
	&setCmd{},
	&networthCmd{},
	&goalsCmd{},
	&forecastCmd{},
	&entityCmd{},
	&addYearCmd{},
	&exportCmd{},
	&importCmd{},
	&initCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state-file", "homebudget.json", "Path to the ledger state file (JSON)")

// loadState reads the state file. A missing file is not an error: the
// ledger starts from the seeded household state.
func loadState() (*homebudget.State, error) {
	f, err := os.Open(*stateFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("state file does not exist, starting from the seeded ledger", "file", *stateFile)
		return homebudget.DefaultState(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return homebudget.Load(f)
}

// saveState writes the state file back.
func saveState(s *homebudget.State) error {
	f, err := os.Create(*stateFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return homebudget.Save(f, s)
}

// resolveYear picks the fiscal year a report is about: the -fy flag if
// given, otherwise the first tracked year.
func resolveYear(s *homebudget.State, fy string) (fiscal.Year, error) {
	if fy == "" {
		if len(s.Years) == 0 {
			return fiscal.Year{}, fmt.Errorf("no fiscal year is tracked yet")
		}
		return s.Years[0], nil
	}
	y, err := fiscal.Parse(fy)
	if err != nil {
		return fiscal.Year{}, err
	}
	if !s.HasYear(y) {
		return fiscal.Year{}, fmt.Errorf("fiscal year %s is not tracked (use add-year)", y)
	}
	return y, nil
}
