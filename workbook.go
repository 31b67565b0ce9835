package homebudget

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"homebudget/fiscal"
)

// This file implements the workbook codec: one tabular sheet per fiscal
// year, plus fixed sheets for net worth and savings goals and one sheet
// per auxiliary entity. The exported shape is also the import contract,
// so export then import must reproduce every actual exactly.

const (
	sheetPrefix     = "FY "
	headerFirstCell = "Line Item"
	netWorthSheet   = "Net Worth"
	goalsSheet      = "Savings Goals"
)

// ExportWorkbook serializes the full state into an xlsx workbook
// written to w.
func ExportWorkbook(s *State, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, y := range s.Years {
		if err := writeYearSheet(f, s, y); err != nil {
			return fmt.Errorf("cannot write sheet for FY %s: %w", y, err)
		}
	}
	if err := writeNetWorthSheet(f, s); err != nil {
		return fmt.Errorf("cannot write net worth sheet: %w", err)
	}
	if err := writeGoalsSheet(f, s); err != nil {
		return fmt.Errorf("cannot write goals sheet: %w", err)
	}
	for _, e := range s.Entities {
		if err := writeEntitySheet(f, e); err != nil {
			return fmt.Errorf("cannot write sheet for entity %s: %w", e.Name, err)
		}
	}

	// The workbook was created with a default empty sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeYearSheet(f *excelize.File, s *State, y fiscal.Year) error {
	months := y.Months()
	incomeRows := s.Catalog.ActiveRows(y, Income)
	expenseRows := s.Catalog.ActiveRows(y, Expense)

	header := []interface{}{headerFirstCell}
	for _, m := range months {
		header = append(header, m)
	}
	header = append(header, "FY Total", "Budget/mo", "Avg Variance")

	lineRow := func(item LineItem) []interface{} {
		row := []interface{}{item.Label}
		var total int64
		for _, m := range months {
			v := s.Actual(y, item.ID, m)
			total += v
			row = append(row, v)
		}
		return append(row, total, item.Budget, RoundDiv(total, 12)-item.Budget)
	}
	totalRow := func(label string, k Kind) []interface{} {
		row := []interface{}{label}
		var total int64
		for _, m := range months {
			v := s.kindMonthTotal(y, m, k)
			total += v
			row = append(row, v)
		}
		return append(row, total, "", "")
	}

	rows := [][]interface{}{
		{fmt.Sprintf("HOUSEHOLD CASH FLOW — FY %s", y)},
		{fmt.Sprintf("Exported: %s", time.Now().Format("02/01/2006"))},
		{},
		header,
		{"── INCOME ──"},
	}
	for _, item := range incomeRows {
		rows = append(rows, lineRow(item))
	}
	rows = append(rows, totalRow("TOTAL INCOME", Income), []interface{}{}, []interface{}{"── EXPENSES ──"})
	for _, item := range expenseRows {
		rows = append(rows, lineRow(item))
	}
	rows = append(rows, totalRow("TOTAL EXPENSES", Expense), []interface{}{})

	net := []interface{}{"NET CASH FLOW"}
	var netTotal int64
	for _, m := range months {
		t := s.MonthTotals(y, m)
		netTotal += t.Net
		net = append(net, t.Net)
	}
	rows = append(rows, append(net, netTotal, "", ""))

	sheet := sheetPrefix + y.String()
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 38); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", last, 11)
}

func writeNetWorthSheet(f *excelize.File, s *State) error {
	rows := [][]interface{}{
		{"NET WORTH SNAPSHOT", ""},
		{"Date", time.Now().Format("02/01/2006")},
		{},
		{"ASSETS", "Value (₹)"},
	}
	for _, a := range s.Assets {
		rows = append(rows, []interface{}{a.Label, a.Value})
	}
	rows = append(rows, []interface{}{"TOTAL ASSETS", s.TotalAssets()}, []interface{}{}, []interface{}{"LIABILITIES", "Value (₹)"})
	for _, l := range s.Liabilities {
		rows = append(rows, []interface{}{l.Label, l.Value})
	}
	rows = append(rows,
		[]interface{}{"TOTAL LIABILITIES", s.TotalLiabilities()},
		[]interface{}{},
		[]interface{}{"NET WORTH", s.NetWorth()},
	)
	if err := writeRows(f, netWorthSheet, rows); err != nil {
		return err
	}
	return f.SetColWidth(netWorthSheet, "A", "B", 24)
}

func writeGoalsSheet(f *excelize.File, s *State) error {
	rows := [][]interface{}{
		{"SAVINGS GOALS", "Target", "Saved", "Remaining", "% Done", "Deadline"},
	}
	for _, g := range s.Goals {
		p := GoalProgress(g, 0)
		rows = append(rows, []interface{}{
			g.Icon + " " + g.Name, g.Target, g.Saved, p.Remaining, fmt.Sprintf("%d%%", p.Percent), g.Deadline,
		})
	}
	if err := writeRows(f, goalsSheet, rows); err != nil {
		return err
	}
	return f.SetColWidth(goalsSheet, "A", "F", 14)
}

func writeEntitySheet(f *excelize.File, e *Entity) error {
	months := fiscal.CycleMonths()
	header := []interface{}{headerFirstCell}
	for _, m := range months {
		header = append(header, m)
	}
	header = append(header, "Total", "Budget/mo")

	lineRow := func(item LineItem) []interface{} {
		row := []interface{}{item.Label}
		var total int64
		for _, m := range months {
			v := e.Actuals[actualKey(item.ID, m)]
			total += v
			row = append(row, v)
		}
		return append(row, total, item.Budget)
	}

	t := e.EntityTotals()
	rows := [][]interface{}{
		{fmt.Sprintf("%s — 12 MONTH CYCLE", strings.ToUpper(e.Name))},
		{},
		header,
	}
	for _, item := range e.Income {
		rows = append(rows, lineRow(item))
	}
	for _, item := range e.Expense {
		rows = append(rows, lineRow(item))
	}
	rows = append(rows, []interface{}{}, []interface{}{"NET", t.Net})

	if err := writeRows(f, e.Name, rows); err != nil {
		return err
	}
	return f.SetColWidth(e.Name, "A", "A", 32)
}

// ImportWorkbook reads a previously exported (or compatible hand-edited)
// workbook and overlays its amounts onto the state. It returns the
// number of fiscal-year sheets applied.
//
// Only sheets named "FY <year>" are considered. Each sheet is staged and
// committed atomically: a sheet that cannot be read leaves its fiscal
// year exactly as it was, and the remaining sheets are still processed.
// Cells that do not parse as amounts keep the prior value, so the import
// is a sparse overlay and re-running it on the same file is idempotent.
func ImportWorkbook(s *State, r io.Reader) (imported int, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("cannot read workbook: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		y, ok := yearOfSheet(name)
		if !ok {
			continue
		}
		rows, err := f.GetRows(name)
		if err != nil {
			continue // abandon this sheet, keep going
		}
		if applySheet(s, y, rows) {
			imported++
		}
	}
	return imported, nil
}

// yearOfSheet extracts the fiscal year of an "FY <year>" sheet name.
func yearOfSheet(name string) (fiscal.Year, bool) {
	id, ok := strings.CutPrefix(name, sheetPrefix)
	if !ok {
		return fiscal.Year{}, false
	}
	y, err := fiscal.Parse(strings.TrimSpace(id))
	if err != nil {
		return fiscal.Year{}, false
	}
	return y, true
}

// applySheet overlays one fiscal-year sheet. It reports whether the
// sheet was applied.
func applySheet(s *State, y fiscal.Year, rows [][]string) bool {
	headerIdx := -1
	for i, row := range rows {
		if len(row) > 0 && row[0] == headerFirstCell {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return false
	}
	header := rows[headerIdx]

	months := y.Months()
	cols := make([]int, len(months))
	for i, m := range months {
		cols[i] = slices.Index(header, m)
	}

	byLabel := make(map[string]string) // display label -> line item id
	for _, item := range s.Catalog.AllActiveRows(y) {
		byLabel[item.Label] = item.ID
	}

	// Stage onto a copy so a half-read sheet never corrupts the year. A
	// year not tracked yet starts from the catalog seed and the sheet
	// overlays it.
	staged, tracked := s.Actuals[y]
	if tracked {
		staged = staged.clone()
	} else {
		staged = s.Catalog.InitialActuals(y)
	}
	for _, row := range rows[headerIdx+1:] {
		if len(row) == 0 {
			continue
		}
		id, ok := byLabel[row[0]]
		if !ok {
			continue // section dividers, total rows, unknown labels
		}
		for mi, m := range months {
			ci := cols[mi]
			if ci < 0 || ci >= len(row) {
				continue
			}
			if v, ok := parseAmount(row[ci]); ok {
				staged[actualKey(id, m)] = v
			}
		}
	}

	s.EnsureYear(y)
	s.Actuals[y] = staged
	return true
}

// parseAmount leniently parses a cell as a whole rupee amount. Currency
// symbols and separators are tolerated; anything else is reported as
// unparseable and the caller keeps the prior value.
func parseAmount(cell string) (int64, bool) {
	cleaned := strings.TrimSpace(cell)
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	return d.Round(0).IntPart(), true
}
