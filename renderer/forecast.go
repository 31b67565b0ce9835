package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"homebudget"
)

// ForecastMarkdown renders the month-by-month cash-flow forecast table.
func ForecastMarkdown(opening int64, forecast []homebudget.ForecastMonth) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%d Month Cash Flow Forecast", len(forecast)))
	doc.PlainText(fmt.Sprintf("Opening bank balance: %s", INR(opening)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Income", "Expenses", "Monthly Net", "Bank Balance"},
	}
	for _, m := range forecast {
		table.Rows = append(table.Rows, []string{
			m.Label, INR(m.Income), INR(m.Expense), SignedINR(m.Net), INR(m.Balance),
		})
	}
	doc.Table(table)
	doc.PlainText("The forecast uses fixed budget values; update actuals in the tracker for a more accurate projection.")

	return doc.String()
}
