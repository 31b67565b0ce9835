package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"homebudget"
	"homebudget/fiscal"
)

// NetWorthMarkdown renders the net-worth snapshot: assets, liabilities,
// the derived net worth and a simple projection that assumes the whole
// monthly surplus of the active fiscal year gets saved.
func NetWorthMarkdown(s *homebudget.State, y fiscal.Year) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	netWorth := s.NetWorth()
	avgNet := s.AvgMonthlyNet(y)

	doc.H1("Net Worth")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"KPI", "Value"},
		Rows: [][]string{
			{"Total Assets", INR(s.TotalAssets())},
			{"Total Liabilities", INR(s.TotalLiabilities())},
			{"Net Worth", SignedINR(netWorth)},
			{"Debt-to-Asset", fmt.Sprintf("%d%%", homebudget.DebtToAssetPercent(s.Assets, s.Liabilities))},
		},
	})

	doc.H2("Assets")
	assets := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Asset", "Type", "Value"},
	}
	for _, a := range s.Assets {
		assets.Rows = append(assets.Rows, []string{a.ID, a.Label, a.Type, INR(a.Value)})
	}
	doc.Table(assets)

	doc.H2("Liabilities")
	liabilities := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Liability", "Value"},
	}
	for _, l := range s.Liabilities {
		liabilities.Rows = append(liabilities.Rows, []string{l.ID, l.Label, INR(l.Value)})
	}
	doc.Table(liabilities)

	doc.H2("Projection (at current surplus)")
	projection := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Horizon", "Net Worth"},
	}
	for i, v := range homebudget.NetWorthProjection(netWorth, avgNet, 13, 2) {
		label := "Now"
		if i > 0 {
			label = fmt.Sprintf("M+%d", i*2)
		}
		projection.Rows = append(projection.Rows, []string{label, INR(v)})
	}
	doc.Table(projection)
	doc.PlainText(fmt.Sprintf("Based on avg monthly surplus of %s for FY %s.", INR(avgNet), y))

	return doc.String()
}
