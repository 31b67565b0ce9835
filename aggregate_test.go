package homebudget

import (
	"testing"

	"github.com/carlmjohnson/be"

	"homebudget/fiscal"
)

func TestTotalsOnEmptyStore(t *testing.T) {
	s := NewState(DefaultCatalog())
	for _, y := range []fiscal.Year{fiscal.New(2025), fiscal.New(2099)} {
		got := s.FiscalYearTotals(y)
		if got != (Totals{}) {
			t.Errorf("FiscalYearTotals(%s) on empty store = %+v, want zeros", y, got)
		}
		if mt := s.MonthTotals(y, y.Months()[0]); mt != (Totals{}) {
			t.Errorf("MonthTotals(%s) on empty store = %+v, want zeros", y, mt)
		}
	}
}

func TestNetIdentity(t *testing.T) {
	s := DefaultState()
	y := fiscal.New(2025)
	s.SetActual(y, "cook", "Sep-25", 12345)
	s.SetActual(y, "rental", "Oct-25", 17)

	for _, year := range s.Years {
		got := s.FiscalYearTotals(year)
		be.Equal(t, got.Income-got.Expense, got.Net)
		for _, m := range year.Months() {
			mt := s.MonthTotals(year, m)
			be.Equal(t, mt.Income-mt.Expense, mt.Net)
		}
	}
}

func TestSeededFiscalYearTotals(t *testing.T) {
	s := DefaultState()
	y := fiscal.New(2025)

	// at budget: income 13750+25000+10000+10000+10000 = 68750/mo,
	// expenses 9177+9704+11503+12964+1000+10000+6000 = 60348/mo
	// ("other" seeds to zero).
	got := s.FiscalYearTotals(y)
	be.Equal(t, int64(68750*12), got.Income)
	be.Equal(t, int64(60348*12), got.Expense)
	be.Equal(t, int64((68750-60348)*12), got.Net)
}

func TestMonthTotalsCountsOnlyThatMonth(t *testing.T) {
	s := NewState(DefaultCatalog())
	y := fiscal.New(2025)
	s.SetActual(y, "cook", "Sep-25", 0) // ensures year, then zero everything
	for k := range s.Actuals[y] {
		s.Actuals[y][k] = 0
	}
	s.SetActual(y, "cook", "Sep-25", 500)
	s.SetActual(y, "rental", "Sep-25", 800)

	got := s.MonthTotals(y, "Sep-25")
	be.Equal(t, int64(800), got.Income)
	be.Equal(t, int64(500), got.Expense)
	if other := s.MonthTotals(y, "Oct-25"); other != (Totals{}) {
		t.Errorf("Oct-25 totals = %+v, want zeros", other)
	}
}

func TestRowMonthlyAverageRoundsHalfUp(t *testing.T) {
	s := NewState(DefaultCatalog())
	y := fiscal.New(2025)
	s.EnsureYear(y)
	for k := range s.Actuals[y] {
		s.Actuals[y][k] = 0
	}
	// total 18 over 12 months averages 1.5, rounding half-up to 2
	s.SetActual(y, "cook", "Apr-25", 18)
	be.Equal(t, int64(18), s.RowFYTotal(y, "cook"))
	be.Equal(t, int64(2), s.RowMonthlyAverage(y, "cook"))
}

func TestAvgMonthlyNetWhenOverspent(t *testing.T) {
	s := NewState(DefaultCatalog())
	y := fiscal.New(2025)
	s.EnsureYear(y)
	for k := range s.Actuals[y] {
		s.Actuals[y][k] = 0
	}
	// FY net -6, average -0.5, rounds to 0
	s.SetActual(y, "other", "Apr-25", 6)
	be.Equal(t, int64(0), s.AvgMonthlyNet(y))
	// FY net -18, average -1.5, rounds to -1
	s.SetActual(y, "other", "Apr-25", 18)
	be.Equal(t, int64(-1), s.AvgMonthlyNet(y))
}

func TestRoundDiv(t *testing.T) {
	testCases := []struct {
		a, b, want int64
	}{
		{18, 12, 2},
		{17, 12, 1},
		{6, 12, 1},
		{5, 12, 0},
		{100, 3, 33},
		{200, 3, 67},
		{0, 12, 0},
		// negative halves round toward positive infinity
		{-6, 12, 0},
		{-18, 12, -1},
		{-5, 12, 0},
		{-7, 12, -1},
		{-100, 3, -33},
		{-200, 3, -67},
	}
	for _, tc := range testCases {
		if got := RoundDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("RoundDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNetWorth(t *testing.T) {
	s := DefaultState()
	// seeded: assets 2,380,000 and liabilities 1,627,060
	be.Equal(t, int64(2380000), s.TotalAssets())
	be.Equal(t, int64(1627060), s.TotalLiabilities())
	be.Equal(t, int64(752940), s.NetWorth())

	if got := NetWorth(nil, nil); got != 0 {
		t.Errorf("NetWorth(nil, nil) = %d, want 0", got)
	}
	negative := NetWorth(
		[]Asset{{ID: "a", Value: 100}},
		[]Liability{{ID: "l", Value: 250}},
	)
	be.Equal(t, int64(-150), negative)
}

func TestDebtToAssetPercent(t *testing.T) {
	got := DebtToAssetPercent(
		[]Asset{{Value: 1000}},
		[]Liability{{Value: 247}},
	)
	be.Equal(t, int64(25), got) // 24.7 rounds to 25

	// zero assets must not divide by zero
	if got := DebtToAssetPercent(nil, []Liability{{Value: 50}}); got != 5000 {
		t.Errorf("DebtToAssetPercent with no assets = %d, want 5000", got)
	}
}

func TestGoalProgress(t *testing.T) {
	testCases := []struct {
		name    string
		goal    Goal
		surplus int64
		want    Progress
	}{
		{
			name:    "in progress",
			goal:    Goal{Target: 200000, Saved: 15000},
			surplus: 9402,
			want:    Progress{Percent: 8, Remaining: 185000, Reachable: true, MonthsToTarget: 20},
		},
		{
			name:    "reached",
			goal:    Goal{Target: 75000, Saved: 75000},
			surplus: 9402,
			want:    Progress{Percent: 100, Remaining: 0, Reached: true},
		},
		{
			name:    "unreachable at zero surplus",
			goal:    Goal{Target: 100000, Saved: 0},
			surplus: 0,
			want:    Progress{Percent: 0, Remaining: 100000},
		},
		{
			name:    "unreachable at negative surplus",
			goal:    Goal{Target: 100000, Saved: 40000},
			surplus: -500,
			want:    Progress{Percent: 40, Remaining: 60000},
		},
		{
			name:    "zero target",
			goal:    Goal{Target: 0, Saved: 0},
			surplus: 100,
			want:    Progress{Percent: 0, Remaining: 0, Reached: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := GoalProgress(tc.goal, tc.surplus)
			be.Equal(t, tc.want, got)
		})
	}
}

func TestGoalProgressNeverExceedsBounds(t *testing.T) {
	// even a corrupted goal with saved beyond target must report
	// percent <= 100 and remaining >= 0
	got := GoalProgress(Goal{Target: 100, Saved: 250}, 10)
	be.True(t, got.Percent <= 100)
	be.True(t, got.Remaining >= 0)
	be.True(t, got.Reached)
}

func TestEntityTotals(t *testing.T) {
	s := DefaultState()
	e := s.Entity("tin_huf")
	if e == nil {
		t.Fatal("tin_huf entity missing from the default state")
	}
	got := e.EntityTotals()
	be.Equal(t, int64(120000), got.Income)
	be.Equal(t, int64(120000), got.Expense)
	be.Equal(t, int64(0), got.Net)

	be.NilErr(t, s.SetEntityActual("tin_huf", "cash_in", "Sep", 15000))
	got = e.EntityTotals()
	be.Equal(t, int64(125000), got.Income)
	be.Equal(t, int64(5000), got.Net)
}

func TestNetWorthProjection(t *testing.T) {
	got := NetWorthProjection(1000, 10, 4, 2)
	want := []int64{1000, 1020, 1040, 1060}
	be.Equal(t, len(want), len(got))
	for i := range want {
		be.Equal(t, want[i], got[i])
	}
}
