package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"homebudget"
	"homebudget/renderer"
)

type goalsCmd struct {
	fy        string
	add       bool
	delete    string
	setSaved  string
	setTarget string
	value     string

	id       string
	name     string
	target   string
	saved    string
	deadline string
	icon     string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display or edit the savings goals" }
func (*goalsCmd) Usage() string {
	return `hb goals [-fy <fiscal-year>]
hb goals -add -id <id> -name <name> -target <amount> [-saved <amount>] [-deadline <label>] [-icon <icon>]
hb goals -delete <id>
hb goals -set-saved <id> -v <amount>
hb goals -set-target <id> -v <amount>

  Displays the goals with derived progress against the fiscal year's
  monthly surplus, or applies one edit first. Saved amounts are always
  clamped into [0, target].
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fy, "fy", "", "Fiscal year whose surplus drives the outlook.")
	f.BoolVar(&c.add, "add", false, "Add a new goal.")
	f.StringVar(&c.delete, "delete", "", "Goal id to delete.")
	f.StringVar(&c.setSaved, "set-saved", "", "Goal id whose saved amount to update.")
	f.StringVar(&c.setTarget, "set-target", "", "Goal id whose target to update.")
	f.StringVar(&c.value, "v", "", "New amount in whole rupees.")
	f.StringVar(&c.id, "id", "", "Goal id (for -add).")
	f.StringVar(&c.name, "name", "", "Goal name (for -add).")
	f.StringVar(&c.target, "target", "", "Goal target (for -add).")
	f.StringVar(&c.saved, "saved", "0", "Amount already saved (for -add).")
	f.StringVar(&c.deadline, "deadline", "Mar-27", "Deadline label (for -add).")
	f.StringVar(&c.icon, "icon", "🎯", "Goal icon (for -add).")
}

func (c *goalsCmd) edit(s *homebudget.State) error {
	switch {
	case c.add:
		target, ok := parseEditAmount(c.target)
		if !ok {
			return fmt.Errorf("target %q is not an amount", c.target)
		}
		saved, _ := parseEditAmount(c.saved)
		return s.AddGoal(homebudget.Goal{
			ID:       c.id,
			Name:     c.name,
			Target:   target,
			Saved:    saved,
			Deadline: c.deadline,
			Icon:     c.icon,
		})
	case c.delete != "":
		if !s.DeleteGoal(c.delete) {
			return fmt.Errorf("unknown goal %q", c.delete)
		}
	case c.setSaved != "":
		v, ok := parseEditAmount(c.value)
		if !ok {
			return fmt.Errorf("value %q is not an amount", c.value)
		}
		if !s.SetGoalSaved(c.setSaved, v) {
			return fmt.Errorf("unknown goal %q", c.setSaved)
		}
	case c.setTarget != "":
		v, ok := parseEditAmount(c.value)
		if !ok {
			return fmt.Errorf("value %q is not an amount", c.value)
		}
		if !s.SetGoalTarget(c.setTarget, v) {
			return fmt.Errorf("unknown goal %q", c.setTarget)
		}
	}
	return nil
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	editing := c.add || c.delete != "" || c.setSaved != "" || c.setTarget != ""
	if editing {
		if err := c.edit(s); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
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
	printMarkdown(renderer.GoalsMarkdown(s, y))
	return subcommands.ExitSuccess
}
