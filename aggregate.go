package homebudget

import (
	"github.com/shopspring/decimal"

	"homebudget/fiscal"
)

// Totals is the income/expense/net triple every aggregation returns.
type Totals struct {
	Income  int64
	Expense int64
	Net     int64
}

// RoundDiv divides a by b rounding to the nearest integer, halves
// toward positive infinity, the rounding used for every user-facing
// average and percentage. Negative halves round up: -6/12 gives 0, not
// -1. b must be positive.
func RoundDiv(a, b int64) int64 {
	half := decimal.New(5, -1)
	return decimal.NewFromInt(a).Div(decimal.NewFromInt(b)).Add(half).Floor().IntPart()
}

func (s *State) kindMonthTotal(y fiscal.Year, month string, k Kind) int64 {
	var total int64
	for _, item := range s.Catalog.ActiveRows(y, k) {
		total += s.Actual(y, item.ID, month)
	}
	return total
}

// MonthTotals sums the actuals of one month of a fiscal year across all
// active rows. Untracked years and missing values count as zero.
func (s *State) MonthTotals(y fiscal.Year, month string) Totals {
	inc := s.kindMonthTotal(y, month, Income)
	exp := s.kindMonthTotal(y, month, Expense)
	return Totals{Income: inc, Expense: exp, Net: inc - exp}
}

// FiscalYearTotals sums all twelve months of a fiscal year.
func (s *State) FiscalYearTotals(y fiscal.Year) Totals {
	var t Totals
	for _, m := range y.Months() {
		t.Income += s.kindMonthTotal(y, m, Income)
		t.Expense += s.kindMonthTotal(y, m, Expense)
	}
	t.Net = t.Income - t.Expense
	return t
}

// RowFYTotal sums one line item's actuals over a fiscal year.
func (s *State) RowFYTotal(y fiscal.Year, id string) int64 {
	var total int64
	for _, m := range y.Months() {
		total += s.Actual(y, id, m)
	}
	return total
}

// RowMonthlyAverage is the rounded per-month average of one line item
// over a fiscal year. Twelve times this figure may differ from
// RowFYTotal by a few rupees; that is accepted.
func (s *State) RowMonthlyAverage(y fiscal.Year, id string) int64 {
	return RoundDiv(s.RowFYTotal(y, id), 12)
}

// AvgMonthlyNet is the rounded monthly net surplus of a fiscal year,
// the figure goals and projections budget against.
func (s *State) AvgMonthlyNet(y fiscal.Year) int64 {
	return RoundDiv(s.FiscalYearTotals(y).Net, 12)
}

// EntityTotals sums an entity's single 12-month cycle.
func (e *Entity) EntityTotals() Totals {
	var t Totals
	for _, m := range fiscal.CycleMonths() {
		for _, item := range e.Income {
			t.Income += e.Actuals[actualKey(item.ID, m)]
		}
		for _, item := range e.Expense {
			t.Expense += e.Actuals[actualKey(item.ID, m)]
		}
	}
	t.Net = t.Income - t.Expense
	return t
}

// RowCycleTotal sums one entity line item over its cycle.
func (e *Entity) RowCycleTotal(id string) int64 {
	var total int64
	for _, m := range fiscal.CycleMonths() {
		total += e.Actuals[actualKey(id, m)]
	}
	return total
}

// NetWorth is total asset value minus total liability value.
func NetWorth(assets []Asset, liabilities []Liability) int64 {
	var total int64
	for _, a := range assets {
		total += a.Value
	}
	for _, l := range liabilities {
		total -= l.Value
	}
	return total
}

// NetWorth computes the state's current net worth. Derived, never stored.
func (s *State) NetWorth() int64 { return NetWorth(s.Assets, s.Liabilities) }

// TotalAssets sums the asset list.
func (s *State) TotalAssets() int64 {
	var total int64
	for _, a := range s.Assets {
		total += a.Value
	}
	return total
}

// TotalLiabilities sums the liability list.
func (s *State) TotalLiabilities() int64 {
	var total int64
	for _, l := range s.Liabilities {
		total += l.Value
	}
	return total
}

// DebtToAssetPercent is total liabilities as a rounded percentage of
// total assets (lower is better).
func DebtToAssetPercent(assets []Asset, liabilities []Liability) int64 {
	var ta, tl int64
	for _, a := range assets {
		ta += a.Value
	}
	for _, l := range liabilities {
		tl += l.Value
	}
	return RoundDiv(100*tl, max(ta, 1))
}

// Progress is the derived standing of one savings goal.
type Progress struct {
	Percent   int64 // 0..100, rounded half-up
	Remaining int64 // never negative
	Reached   bool

	// MonthsToTarget estimates how many months of the given surplus are
	// still needed. Meaningless unless Reachable.
	MonthsToTarget int64
	Reachable      bool
}

// GoalProgress derives a goal's progress given the available monthly
// surplus. A reached goal is reported distinctly from one merely
// rounding up to 100%.
func GoalProgress(g Goal, monthlySurplus int64) Progress {
	p := Progress{
		Percent:   clampAmount(RoundDiv(100*g.Saved, max(g.Target, 1)), 0, 100),
		Remaining: max(g.Target-g.Saved, 0),
		Reached:   g.Saved >= g.Target,
	}
	if p.Reached {
		return p
	}
	if monthlySurplus > 0 {
		p.Reachable = true
		// ceil(remaining / surplus)
		p.MonthsToTarget = (p.Remaining + monthlySurplus - 1) / monthlySurplus
	}
	return p
}

// NetWorthProjection samples future net worth assuming the whole
// monthly surplus is saved: base, base+step*monthlyNet, and so on for
// points samples stepping step months each time.
func NetWorthProjection(base, monthlyNet int64, points, step int) []int64 {
	out := make([]int64, 0, points)
	for i := 0; i < points; i++ {
		out = append(out, base+monthlyNet*int64(i*step))
	}
	return out
}
