package renderer

import (
	"strings"
	"testing"
	"time"

	"homebudget"
	"homebudget/fiscal"
)

func TestINR(t *testing.T) {
	got := INR(13750)
	if !strings.HasPrefix(got, "₹") {
		t.Errorf("INR(13750) = %q, want a ₹ prefix", got)
	}
	if !strings.Contains(got, "13,750") {
		t.Errorf("INR(13750) = %q, want thousands grouping", got)
	}
}

func TestSignedINR(t *testing.T) {
	if got := SignedINR(500); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedINR(500) = %q, want a + prefix", got)
	}
	if got := SignedINR(0); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedINR(0) = %q, want a + prefix", got)
	}
	if got := SignedINR(-500); !strings.HasPrefix(got, "-") {
		t.Errorf("SignedINR(-500) = %q, want a - prefix", got)
	}
}

func TestOverviewMarkdown(t *testing.T) {
	s := homebudget.DefaultState()
	y := fiscal.New(2025)
	got := OverviewMarkdown(s, y)

	for _, want := range []string{
		"Overview FY 2025-26",
		"Monthly Cash Flow",
		"Apr-25",
		"Mar-26",
		"Rental Income",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestTrackerMarkdown(t *testing.T) {
	s := homebudget.DefaultState()
	y := fiscal.New(2026)
	got := TrackerMarkdown(s, y)

	for _, want := range []string{"FY 2026-27", "Cook Salary", "TOTAL INCOME", "TOTAL EXPENSES", "NET CASH FLOW"} {
		if !strings.Contains(got, want) {
			t.Errorf("tracker missing %q", want)
		}
	}
}

func TestNetWorthMarkdown(t *testing.T) {
	s := homebudget.DefaultState()
	got := NetWorthMarkdown(s, fiscal.New(2025))
	for _, want := range []string{"Net Worth", "Andheri East Flat", "IDFC Loan 3 Outstanding", "Debt-to-Asset"} {
		if !strings.Contains(got, want) {
			t.Errorf("net worth report missing %q", want)
		}
	}
}

func TestGoalsMarkdown(t *testing.T) {
	s := homebudget.DefaultState()
	got := GoalsMarkdown(s, fiscal.New(2025))
	for _, want := range []string{"Emergency Fund", "Family Vacation", "Mar-27"} {
		if !strings.Contains(got, want) {
			t.Errorf("goals report missing %q", want)
		}
	}
}

func TestForecastMarkdown(t *testing.T) {
	s := homebudget.DefaultState()
	start := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	months := s.DefaultForecast(homebudget.ForecastHorizon, start)
	got := ForecastMarkdown(s.OpeningBalance, months)
	for _, want := range []string{"Nov-26", "Apr-28", "Bank Balance"} {
		if !strings.Contains(got, want) {
			t.Errorf("forecast report missing %q", want)
		}
	}
}

func TestEntityMarkdown(t *testing.T) {
	s := homebudget.DefaultState()
	e := s.Entity("tin_huf")
	got := EntityMarkdown(e)
	for _, want := range []string{"TIN HUF", "Cash from Customer", "Apr", "Mar"} {
		if !strings.Contains(got, want) {
			t.Errorf("entity report missing %q", want)
		}
	}
}
