package homebudget

import (
	"fmt"

	"homebudget/fiscal"
)

// Kind distinguishes income line items from expense line items.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown line item kind: %q", s)
	}
}

// LineItem is a named recurring income or expense category with a
// default monthly budget. Label doubles as the join key when matching
// workbook rows, so labels must be unique within a catalog.
type LineItem struct {
	ID     string
	Label  string
	Budget int64
	Note   string

	// FillWhenIncurred marks ad-hoc items (groceries, one-offs) whose
	// actuals start at zero instead of the budget when a year is seeded.
	FillWhenIncurred bool
}

// Rule is a declarative effective-date override: for any fiscal year
// whose starting calendar year is >= From, the row's budget and note
// are replaced. When several rules match, the last one defined wins.
type Rule struct {
	From   int
	Budget int64
	Note   string
}

// CatalogRow couples a line item with its effective-date rules.
type CatalogRow struct {
	LineItem
	Rules []Rule
}

// Catalog is the static definition of all tracked line items. It is the
// single place budgets change over time; aggregation never branches on
// specific rows.
type Catalog struct {
	Income  []CatalogRow
	Expense []CatalogRow
}

func (c *Catalog) rows(k Kind) []CatalogRow {
	if k == Income {
		return c.Income
	}
	return c.Expense
}

// ActiveRows returns the line items of the given kind for a fiscal year,
// in catalog order, with any matching effective-date rule applied.
func (c *Catalog) ActiveRows(y fiscal.Year, k Kind) []LineItem {
	rows := c.rows(k)
	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		item := row.LineItem
		for _, rule := range row.Rules {
			if y.Start() >= rule.From {
				item.Budget = rule.Budget
				item.Note = rule.Note
			}
		}
		items = append(items, item)
	}
	return items
}

// AllActiveRows returns the active income rows followed by the active
// expense rows for a fiscal year.
func (c *Catalog) AllActiveRows(y fiscal.Year) []LineItem {
	items := c.ActiveRows(y, Income)
	return append(items, c.ActiveRows(y, Expense)...)
}

// Validate checks the catalog for configuration errors. Duplicate ids or
// display labels would make workbook import ambiguous and are rejected.
func (c *Catalog) Validate() error {
	ids := map[string]bool{}
	labels := map[string]bool{}
	for _, row := range append(append([]CatalogRow{}, c.Income...), c.Expense...) {
		if row.ID == "" || row.Label == "" {
			return fmt.Errorf("catalog row %q must have an id and a label", row.ID)
		}
		if ids[row.ID] {
			return fmt.Errorf("catalog id %q is defined twice", row.ID)
		}
		if labels[row.Label] {
			return fmt.Errorf("catalog label %q is defined twice", row.Label)
		}
		ids[row.ID] = true
		labels[row.Label] = true
	}
	return nil
}

// InitialActuals seeds an actuals map for a fiscal year: every active
// row gets its effective budget for every month, except fill-when-incurred
// rows which start at zero.
func (c *Catalog) InitialActuals(y fiscal.Year) MonthlyActuals {
	months := y.Months()
	actuals := make(MonthlyActuals, len(months)*(len(c.Income)+len(c.Expense)))
	for _, item := range c.AllActiveRows(y) {
		value := item.Budget
		if item.FillWhenIncurred {
			value = 0
		}
		for _, m := range months {
			actuals[actualKey(item.ID, m)] = value
		}
	}
	return actuals
}

// actualKey is the composite key of the sparse actuals map.
func actualKey(id, month string) string { return id + "_" + month }

// DefaultCatalog returns the household's line items, including the two
// effective-date changes: Loan 1 closes during FY 2026-27 and the
// TIN HUF transfer that funded its EMI ends with it.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Income: []CatalogRow{
			{LineItem: LineItem{ID: "rental", Label: "Rental Income — Andheri East", Budget: 13750, Note: "Fixed — tenant pays monthly"}},
			{LineItem: LineItem{ID: "cash_cust", Label: "Cash from Customer", Budget: 25000, Note: "₹10k → TIN HUF, ₹16k → staff"}},
			{LineItem: LineItem{ID: "wife", Label: "Wife's Contribution — Staff", Budget: 10000, Note: "For house staff"}},
			{
				LineItem: LineItem{ID: "tin_huf", Label: "TIN HUF Transfer to Personal", Budget: 10000, Note: "Funds Loan 1 EMI"},
				Rules:    []Rule{{From: 2026, Budget: 0, Note: "Ended — Loan 1 closed"}},
			},
			{LineItem: LineItem{ID: "sam7_reimb", Label: "SAM 7 — Loan 2 Reimbursement", Budget: 10000, Note: "Reimburses Loan 2 EMI"}},
		},
		Expense: []CatalogRow{
			{
				LineItem: LineItem{ID: "emi1", Label: "EMI — Loan 1 (Wedding ₹1.03L)", Budget: 9177, Note: "Closes Dec 2026"},
				Rules:    []Rule{{From: 2026, Budget: 0, Note: "Closed Dec 2026"}},
			},
			{LineItem: LineItem{ID: "emi2", Label: "EMI — Loan 2 (SAM 7 ₹2.04L)", Budget: 9704, Note: "Ends Feb 2027"}},
			{LineItem: LineItem{ID: "emi3", Label: "EMI — Loan 3 (Wedding+Closure)", Budget: 11503, Note: "Ends Dec 2030"}},
			{LineItem: LineItem{ID: "flat_emi", Label: "Flat EMI — Andheri East (Your 50%)", Budget: 12964, Note: "Home loan share"}},
			{LineItem: LineItem{ID: "society", Label: "Flat Society Charges", Budget: 1000, Note: "Monthly maintenance"}},
			{LineItem: LineItem{ID: "cook", Label: "Cook Salary", Budget: 10000, Note: "Cash from receipts"}},
			{LineItem: LineItem{ID: "maid", Label: "Maid Salary", Budget: 6000, Note: "Cash from receipts"}},
			{LineItem: LineItem{ID: "other", Label: "Other Personal Expenses", Budget: 0, Note: "Groceries, utilities, medical", FillWhenIncurred: true}},
		},
	}
}
