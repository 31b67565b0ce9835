package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"homebudget"
	"homebudget/fiscal"
)

// EntityMarkdown renders one auxiliary entity's 12-month cycle.
func EntityMarkdown(e *homebudget.Entity) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	months := fiscal.CycleMonths()
	totals := e.EntityTotals()

	doc.H1(fmt.Sprintf("%s (12 month cycle)", e.Name))

	header := []string{"Line Item", "Budget"}
	header = append(header, months...)
	header = append(header, "Total")
	alignment := make([]md.TableAlignment, len(header))
	alignment[0] = md.AlignLeft
	for i := 1; i < len(alignment); i++ {
		alignment[i] = md.AlignRight
	}
	table := md.TableSet{Alignment: alignment, Header: header}

	for _, kind := range []homebudget.Kind{homebudget.Income, homebudget.Expense} {
		for _, item := range e.Rows(kind) {
			row := []string{item.Label, INR(item.Budget)}
			for _, m := range months {
				row = append(row, INR(e.Actual(item.ID, m)))
			}
			table.Rows = append(table.Rows, append(row, INR(e.RowCycleTotal(item.ID))))
		}
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Cycle Totals", "Value"},
		Rows: [][]string{
			{"Income", INR(totals.Income)},
			{"Expenses", INR(totals.Expense)},
			{"Net", SignedINR(totals.Net)},
		},
	})

	return doc.String()
}
