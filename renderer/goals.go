package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"homebudget"
	"homebudget/fiscal"
)

// GoalsMarkdown renders the savings goals with their derived progress
// against the active fiscal year's monthly surplus.
func GoalsMarkdown(s *homebudget.State, y fiscal.Year) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	surplus := s.AvgMonthlyNet(y)
	var target, saved int64
	for _, g := range s.Goals {
		target += g.Target
		saved += g.Saved
	}

	doc.H1("Savings Goals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"KPI", "Value"},
		Rows: [][]string{
			{"Active Goals", fmt.Sprintf("%d", len(s.Goals))},
			{"Total Target", INR(target)},
			{"Total Saved", INR(saved)},
			{"Monthly Surplus", SignedINR(surplus)},
		},
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"ID", "Goal", "Target", "Saved", "Remaining", "% Done", "Deadline", "Outlook"},
	}
	for _, g := range s.Goals {
		p := homebudget.GoalProgress(g, surplus)
		outlook := "unreachable at current surplus"
		switch {
		case p.Reached:
			outlook = "goal reached"
		case p.Reachable:
			outlook = fmt.Sprintf("~%d months to go", p.MonthsToTarget)
		}
		table.Rows = append(table.Rows, []string{
			g.ID,
			g.Icon + " " + g.Name,
			INR(g.Target),
			INR(g.Saved),
			INR(p.Remaining),
			fmt.Sprintf("%d%%", p.Percent),
			g.Deadline,
			outlook,
		})
	}
	doc.Table(table)

	return doc.String()
}
