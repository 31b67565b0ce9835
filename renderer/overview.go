package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"homebudget"
	"homebudget/fiscal"
)

// OverviewMarkdown renders the fiscal-year dashboard: KPI cards, the
// monthly cash-flow table and the per-row monthly-average breakdown.
func OverviewMarkdown(s *homebudget.State, y fiscal.Year) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	totals := s.FiscalYearTotals(y)
	avgNet := s.AvgMonthlyNet(y)

	doc.H1(fmt.Sprintf("Overview FY %s", y))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"KPI", "Value"},
		Rows: [][]string{
			{"FY Total Income", INR(totals.Income)},
			{"FY Total Expenses", INR(totals.Expense)},
			{"FY Net Surplus", SignedINR(totals.Net)},
			{"Avg Monthly Net", SignedINR(avgNet)},
			{"Net Worth", INR(s.NetWorth())},
		},
	})

	doc.H2("Monthly Cash Flow")
	monthly := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Income", "Expenses", "Net"},
	}
	for _, m := range y.Months() {
		t := s.MonthTotals(y, m)
		monthly.Rows = append(monthly.Rows, []string{m, INR(t.Income), INR(t.Expense), SignedINR(t.Net)})
	}
	doc.Table(monthly)

	doc.H2("Breakdown (avg/mo)")
	breakdown := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Kind", "Line Item", "Avg/mo"},
	}
	for _, kind := range []homebudget.Kind{homebudget.Income, homebudget.Expense} {
		for _, item := range s.Catalog.ActiveRows(y, kind) {
			breakdown.Rows = append(breakdown.Rows, []string{
				kind.String(), item.Label, INR(s.RowMonthlyAverage(y, item.ID)),
			})
		}
	}
	breakdown.Rows = append(breakdown.Rows,
		[]string{"income", "AVG/MO", INR(homebudget.RoundDiv(totals.Income, 12))},
		[]string{"expense", "AVG/MO", INR(homebudget.RoundDiv(totals.Expense, 12))},
	)
	doc.Table(breakdown)

	return doc.String()
}
