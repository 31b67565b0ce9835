package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"homebudget"
	"homebudget/fiscal"
)

// TrackerMarkdown renders the full monthly tracker grid of a fiscal
// year: one row per line item across all twelve months, with section
// totals and the net cash-flow row. The variance column compares the
// monthly average to the budget; for expenses staying under budget is
// positive.
func TrackerMarkdown(s *homebudget.State, y fiscal.Year) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	months := y.Months()
	doc.H1(fmt.Sprintf("Monthly Tracker FY %s", y))

	header := []string{"Line Item", "Budget"}
	header = append(header, months...)
	header = append(header, "FY Total", "Var/mo")
	alignment := make([]md.TableAlignment, len(header))
	alignment[0] = md.AlignLeft
	for i := 1; i < len(alignment); i++ {
		alignment[i] = md.AlignRight
	}
	table := md.TableSet{Alignment: alignment, Header: header}

	addRows := func(kind homebudget.Kind) {
		for _, item := range s.Catalog.ActiveRows(y, kind) {
			row := []string{item.Label, INR(item.Budget)}
			for _, m := range months {
				row = append(row, INR(s.Actual(y, item.ID, m)))
			}
			variance := s.RowMonthlyAverage(y, item.ID) - item.Budget
			if kind == homebudget.Expense {
				variance = -variance
			}
			row = append(row, INR(s.RowFYTotal(y, item.ID)), SignedINR(variance))
			table.Rows = append(table.Rows, row)
		}
	}
	addTotals := func(label string, kind homebudget.Kind) {
		var budget int64
		for _, item := range s.Catalog.ActiveRows(y, kind) {
			budget += item.Budget
		}
		row := []string{label, INR(budget)}
		var total int64
		for _, m := range months {
			t := s.MonthTotals(y, m)
			v := t.Income
			if kind == homebudget.Expense {
				v = t.Expense
			}
			total += v
			row = append(row, INR(v))
		}
		table.Rows = append(table.Rows, append(row, INR(total), ""))
	}

	addRows(homebudget.Income)
	addTotals("TOTAL INCOME", homebudget.Income)
	addRows(homebudget.Expense)
	addTotals("TOTAL EXPENSES", homebudget.Expense)

	totals := s.FiscalYearTotals(y)
	var budgetNet int64
	for _, item := range s.Catalog.ActiveRows(y, homebudget.Income) {
		budgetNet += item.Budget
	}
	for _, item := range s.Catalog.ActiveRows(y, homebudget.Expense) {
		budgetNet -= item.Budget
	}
	netRow := []string{"NET CASH FLOW", INR(budgetNet)}
	for _, m := range months {
		netRow = append(netRow, SignedINR(s.MonthTotals(y, m).Net))
	}
	table.Rows = append(table.Rows, append(netRow, SignedINR(totals.Net), ""))

	doc.Table(table)
	return doc.String()
}
