package homebudget

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func TestForecastRunningBalance(t *testing.T) {
	rules := []Recurring{
		{Label: "Salary", Kind: Income, Amount: 68750},
		{Label: "Household", Kind: Expense, Amount: 59348},
	}
	start := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	months := Forecast(50000, 6, rules, start)

	be.Equal(t, 6, len(months))
	be.Equal(t, int64(59402), months[0].Balance)
	be.Equal(t, int64(106412), months[5].Balance)
	for _, m := range months {
		be.Equal(t, int64(9402), m.Net)
		be.Equal(t, m.Income-m.Expense, m.Net)
	}
}

func TestForecastLoanCutover(t *testing.T) {
	start := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	months := Forecast(50000, 4, DefaultRecurring(0), start)

	be.Equal(t, "Nov-26", months[0].Label)
	be.Equal(t, "Jan-27", months[2].Label)

	// before the January 2027 cutover both the Loan 1 EMI and the TIN
	// HUF transfer that funds it are active
	be.Equal(t, int64(68750), months[0].Income)
	be.Equal(t, int64(60348), months[0].Expense)
	be.Equal(t, int64(8402), months[1].Net)

	// from January 2027 both stop together
	be.Equal(t, int64(58750), months[2].Income)
	be.Equal(t, int64(51171), months[2].Expense)
	be.Equal(t, int64(7579), months[2].Net)
	be.Equal(t, months[2].Net, months[3].Net)
}

func TestForecastDeterministic(t *testing.T) {
	start := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	a := Forecast(12345, ForecastHorizon, DefaultRecurring(2000), start)
	b := Forecast(12345, ForecastHorizon, DefaultRecurring(2000), start)
	be.Equal(t, ForecastHorizon, len(a))
	for i := range a {
		be.Equal(t, a[i], b[i])
	}
}

func TestForecastExtraSaving(t *testing.T) {
	start := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	plain := Forecast(0, 1, DefaultRecurring(0), start)
	saving := Forecast(0, 1, DefaultRecurring(2500), start)
	be.Equal(t, plain[0].Net-2500, saving[0].Net)
}

func TestRecurringActiveIn(t *testing.T) {
	until := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	from := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	r := Recurring{Label: "EMI", Kind: Expense, Amount: 9177, From: from, Until: until}

	testCases := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range testCases {
		if got := r.ActiveIn(tc.at); got != tc.want {
			t.Errorf("ActiveIn(%s) = %v, want %v", tc.at.Format("2006-01-02"), got, tc.want)
		}
	}

	open := Recurring{Label: "Rent", Kind: Income, Amount: 13750}
	be.True(t, open.ActiveIn(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)))
	be.True(t, open.ActiveIn(time.Date(2099, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDefaultForecastUsesStateKnobs(t *testing.T) {
	s := DefaultState()
	s.OpeningBalance = 80000
	s.ExtraSaving = 1000
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	got := s.DefaultForecast(2, start)
	want := Forecast(80000, 2, DefaultRecurring(1000), start)
	be.Equal(t, 2, len(got))
	be.Equal(t, want[0], got[0])
	be.Equal(t, want[1], got[1])
}
