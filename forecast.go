package homebudget

import (
	"time"

	"homebudget/fiscal"
)

// Recurring is one rule of the cash-flow forecast: a fixed monthly
// amount active between two calendar cutover dates. Cutovers are
// calendar dates, not fiscal-year boundaries; a loan installment stops
// the month its closing date is reached.
type Recurring struct {
	Label  string
	Kind   Kind
	Amount int64

	// From and Until bound the rule. The rule is active for any month
	// starting on or after From and strictly before Until. A zero From
	// means "always was", a zero Until means "never ends".
	From  time.Time
	Until time.Time
}

// ActiveIn reports whether the rule applies to the calendar month of t.
func (r Recurring) ActiveIn(t time.Time) bool {
	m := fiscal.FirstOfMonth(t)
	if !r.From.IsZero() && m.Before(fiscal.FirstOfMonth(r.From)) {
		return false
	}
	if !r.Until.IsZero() && !m.Before(fiscal.FirstOfMonth(r.Until)) {
		return false
	}
	return true
}

// ForecastMonth is one projected month of the forecast.
type ForecastMonth struct {
	Label   string
	Income  int64
	Expense int64
	Net     int64
	Balance int64
}

// Forecast projects horizon consecutive months starting with the month
// containing start. The balance is a running sum seeded at opening.
// Recomputing from the same inputs always yields the same sequence.
func Forecast(opening int64, horizon int, rules []Recurring, start time.Time) []ForecastMonth {
	out := make([]ForecastMonth, 0, horizon)
	balance := opening
	month := fiscal.FirstOfMonth(start)
	for i := 0; i < horizon; i++ {
		var income, expense int64
		for _, r := range rules {
			if !r.ActiveIn(month) {
				continue
			}
			if r.Kind == Income {
				income += r.Amount
			} else {
				expense += r.Amount
			}
		}
		net := income - expense
		balance += net
		out = append(out, ForecastMonth{
			Label:   fiscal.MonthLabel(month),
			Income:  income,
			Expense: expense,
			Net:     net,
			Balance: balance,
		})
		month = fiscal.AddMonths(month, 1)
	}
	return out
}

// ForecastHorizon is the reference forecast length.
const ForecastHorizon = 18

// loan1Closes is the cutover after which Loan 1's EMI and the TIN HUF
// transfer that funded it both stop.
var loan1Closes = time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultRecurring returns the household's recurring rules at budget
// values. extraSaving, when positive, is carried as an additional
// expense representing the monthly goal allocation.
func DefaultRecurring(extraSaving int64) []Recurring {
	rules := []Recurring{
		{Label: "Rental Income", Kind: Income, Amount: 13750},
		{Label: "Cash from Customer", Kind: Income, Amount: 25000},
		{Label: "Wife's Contribution", Kind: Income, Amount: 10000},
		{Label: "TIN HUF Transfer", Kind: Income, Amount: 10000, Until: loan1Closes},
		{Label: "SAM 7 Reimbursement", Kind: Income, Amount: 10000},
		{Label: "EMI Loan 1", Kind: Expense, Amount: 9177, Until: loan1Closes},
		{Label: "EMI Loan 2", Kind: Expense, Amount: 9704},
		{Label: "EMI Loan 3", Kind: Expense, Amount: 11503},
		{Label: "Flat EMI", Kind: Expense, Amount: 12964},
		{Label: "Society Charges", Kind: Expense, Amount: 1000},
		{Label: "Cook Salary", Kind: Expense, Amount: 10000},
		{Label: "Maid Salary", Kind: Expense, Amount: 6000},
	}
	if extraSaving > 0 {
		rules = append(rules, Recurring{Label: "Goal Allocation", Kind: Expense, Amount: extraSaving})
	}
	return rules
}

// DefaultForecast projects the state's recurring rules from start using
// its opening balance and extra-saving knobs.
func (s *State) DefaultForecast(horizon int, start time.Time) []ForecastMonth {
	return Forecast(s.OpeningBalance, horizon, DefaultRecurring(s.ExtraSaving), start)
}
