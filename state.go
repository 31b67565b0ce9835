package homebudget

import (
	"fmt"
	"slices"
	"strings"

	"homebudget/fiscal"
)

// MonthlyActuals is the sparse actual-amount store of one fiscal year or
// one entity cycle, keyed "lineItemID_monthLabel". A missing key counts
// as zero everywhere.
type MonthlyActuals map[string]int64

func (a MonthlyActuals) clone() MonthlyActuals {
	out := make(MonthlyActuals, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Asset is a single owned item on the net-worth sheet.
type Asset struct {
	ID    string
	Label string
	Value int64
	Type  string // property, cash, investment, other
}

// Liability is a single outstanding debt on the net-worth sheet.
type Liability struct {
	ID    string
	Label string
	Value int64
}

// Goal is a savings goal. Saved never exceeds Target; the setters keep
// that invariant.
type Goal struct {
	ID       string
	Name     string
	Target   int64
	Saved    int64
	Deadline string
	Icon     string
}

// Entity is an auxiliary bookkeeping unit (a side account such as an
// HUF) with its own line items and a single rolling 12-month cycle
// keyed by bare month labels instead of fiscal years.
type Entity struct {
	ID      string
	Name    string
	Income  []LineItem
	Expense []LineItem
	Actuals MonthlyActuals
}

// Rows returns the entity's line items of the given kind.
func (e *Entity) Rows(k Kind) []LineItem {
	if k == Income {
		return e.Income
	}
	return e.Expense
}

// Actual returns the stored amount for one of the entity's line items
// in a cycle month; missing values are zero.
func (e *Entity) Actual(id, month string) int64 {
	return e.Actuals[actualKey(id, month)]
}

// seedActuals fills the entity cycle with the budgets of its rows.
func (e *Entity) seedActuals() {
	e.Actuals = make(MonthlyActuals)
	for _, item := range append(append([]LineItem{}, e.Income...), e.Expense...) {
		for _, m := range fiscal.CycleMonths() {
			e.Actuals[actualKey(item.ID, m)] = item.Budget
		}
	}
}

// State is the single owned aggregate of all mutable ledger data. The
// engine and the codecs read and transform it; nothing else retains a
// reference into it.
type State struct {
	Catalog *Catalog

	Years   []fiscal.Year
	Actuals map[fiscal.Year]MonthlyActuals

	Assets      []Asset
	Liabilities []Liability
	Goals       []Goal
	Entities    []*Entity

	// Forecast knobs, edited from the forecast view.
	OpeningBalance int64
	ExtraSaving    int64
}

// NewState creates an empty state bound to a catalog.
func NewState(c *Catalog) *State {
	return &State{
		Catalog: c,
		Actuals: make(map[fiscal.Year]MonthlyActuals),
	}
}

// DefaultState returns the seeded household ledger: fiscal years 2025-26
// and 2026-27 with actuals at budget, the net-worth sheet, the four
// starting goals and the two auxiliary entities.
func DefaultState() *State {
	s := NewState(DefaultCatalog())
	s.EnsureYear(fiscal.New(2025))
	s.EnsureYear(fiscal.New(2026))
	s.OpeningBalance = 50000
	s.Assets = []Asset{
		{ID: "a1", Label: "Andheri East Flat (50% share)", Value: 2300000, Type: "property"},
		{ID: "a2", Label: "Savings Account — Personal", Value: 50000, Type: "cash"},
		{ID: "a3", Label: "TIN HUF Account", Value: 20000, Type: "cash"},
		{ID: "a4", Label: "SAM 7 Account", Value: 10000, Type: "cash"},
		{ID: "a5", Label: "Fixed Deposits / Investments", Value: 0, Type: "investment"},
		{ID: "a6", Label: "Other Assets", Value: 0, Type: "other"},
	}
	s.Liabilities = []Liability{
		{ID: "l1", Label: "IDFC Loan 1 Outstanding", Value: 91775},
		{ID: "l2", Label: "IDFC Loan 2 Outstanding", Value: 116442},
		{ID: "l3", Label: "IDFC Loan 3 Outstanding", Value: 667169},
		{ID: "l4", Label: "Home Loan Outstanding (Your 50%)", Value: 751674},
	}
	s.Goals = []Goal{
		{ID: "g1", Name: "Emergency Fund", Target: 200000, Saved: 15000, Deadline: "Mar-27", Icon: "🛡️"},
		{ID: "g2", Name: "Loan 3 Prepayment", Target: 100000, Saved: 0, Deadline: "Mar-27", Icon: "🏦"},
		{ID: "g3", Name: "Family Vacation", Target: 75000, Saved: 5000, Deadline: "Dec-26", Icon: "✈️"},
		{ID: "g4", Name: "Home Renovation Fund", Target: 150000, Saved: 0, Deadline: "Mar-28", Icon: "🏠"},
	}
	s.Entities = DefaultEntities()
	return s
}

// DefaultEntities returns the household's side accounts with their
// cycles seeded at budget.
func DefaultEntities() []*Entity {
	entities := []*Entity{
		{
			ID:   "tin_huf",
			Name: "TIN HUF",
			Income: []LineItem{
				{ID: "cash_in", Label: "Cash from Customer (HUF share)", Budget: 10000, Note: "₹10k of monthly customer cash"},
			},
			Expense: []LineItem{
				{ID: "to_personal", Label: "Transfer to Personal", Budget: 10000, Note: "Funds Loan 1 EMI"},
			},
		},
		{
			ID:   "sam7",
			Name: "SAM 7",
			Income: []LineItem{
				{ID: "receipts", Label: "Business Receipts", Budget: 10000, Note: "Monthly receipts"},
			},
			Expense: []LineItem{
				{ID: "loan2_reimb", Label: "Loan 2 Reimbursement", Budget: 10000, Note: "Reimburses personal Loan 2 EMI"},
			},
		},
	}
	for _, e := range entities {
		e.seedActuals()
	}
	return entities
}

// HasYear reports whether the fiscal year is tracked.
func (s *State) HasYear(y fiscal.Year) bool { return slices.Contains(s.Years, y) }

// EnsureYear makes a fiscal year tracked, seeding its actuals from the
// catalog if it was not. It reports whether the year was added.
func (s *State) EnsureYear(y fiscal.Year) bool {
	if s.HasYear(y) {
		return false
	}
	s.Years = append(s.Years, y)
	slices.SortFunc(s.Years, fiscal.Year.Compare)
	if _, ok := s.Actuals[y]; !ok {
		s.Actuals[y] = s.Catalog.InitialActuals(y)
	}
	return true
}

// AddYear tracks the successor of the last tracked fiscal year and
// returns it.
func (s *State) AddYear() (fiscal.Year, error) {
	if len(s.Years) == 0 {
		return fiscal.Year{}, fmt.Errorf("no fiscal year is tracked yet")
	}
	next := s.Years[len(s.Years)-1].Next()
	s.EnsureYear(next)
	return next, nil
}

// Actual returns the stored amount for a line item and month of a
// fiscal year; missing values are zero.
func (s *State) Actual(y fiscal.Year, id, month string) int64 {
	return s.Actuals[y][actualKey(id, month)]
}

// SetActual overwrites one actual value, tracking the year first if
// needed. Editing an actual never changes the catalog budget.
func (s *State) SetActual(y fiscal.Year, id, month string, v int64) {
	s.EnsureYear(y)
	s.Actuals[y][actualKey(id, month)] = v
}

// Entity returns the entity with the given id, or nil.
func (s *State) Entity(id string) *Entity {
	for _, e := range s.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// SetEntityActual overwrites one actual in an entity's cycle.
func (s *State) SetEntityActual(entityID, id, month string, v int64) error {
	e := s.Entity(entityID)
	if e == nil {
		return fmt.Errorf("unknown entity %q", entityID)
	}
	if e.Actuals == nil {
		e.Actuals = make(MonthlyActuals)
	}
	e.Actuals[actualKey(id, month)] = v
	return nil
}

// SetAssetValue updates an asset in place. It reports whether the id
// was found.
func (s *State) SetAssetValue(id string, v int64) bool {
	for i := range s.Assets {
		if s.Assets[i].ID == id {
			s.Assets[i].Value = v
			return true
		}
	}
	return false
}

// SetLiabilityValue updates a liability in place. It reports whether
// the id was found.
func (s *State) SetLiabilityValue(id string, v int64) bool {
	for i := range s.Liabilities {
		if s.Liabilities[i].ID == id {
			s.Liabilities[i].Value = v
			return true
		}
	}
	return false
}

// Goal returns a pointer to the goal with the given id, or nil.
func (s *State) Goal(id string) *Goal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}

// AddGoal appends a goal, clamping saved into [0, target].
func (s *State) AddGoal(g Goal) error {
	if strings.TrimSpace(g.Name) == "" || g.Target <= 0 {
		return fmt.Errorf("a goal needs a name and a positive target")
	}
	if s.Goal(g.ID) != nil {
		return fmt.Errorf("goal id %q already exists", g.ID)
	}
	g.Saved = clampAmount(g.Saved, 0, g.Target)
	s.Goals = append(s.Goals, g)
	return nil
}

// DeleteGoal removes a goal. It reports whether the id was found.
func (s *State) DeleteGoal(id string) bool {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			s.Goals = slices.Delete(s.Goals, i, i+1)
			return true
		}
	}
	return false
}

// SetGoalSaved updates a goal's saved amount, clamped into [0, target].
func (s *State) SetGoalSaved(id string, v int64) bool {
	g := s.Goal(id)
	if g == nil {
		return false
	}
	g.Saved = clampAmount(v, 0, g.Target)
	return true
}

// SetGoalTarget updates a goal's target. Saved is clamped down if the
// new target undercuts it, keeping 0 <= saved <= target.
func (s *State) SetGoalTarget(id string, v int64) bool {
	g := s.Goal(id)
	if g == nil || v <= 0 {
		return false
	}
	g.Target = v
	g.Saved = clampAmount(g.Saved, 0, g.Target)
	return true
}

func clampAmount(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
