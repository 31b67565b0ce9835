package homebudget

import (
	"testing"

	"homebudget/fiscal"
)

func TestActiveRowsAppliesEffectiveRules(t *testing.T) {
	c := DefaultCatalog()

	find := func(items []LineItem, id string) *LineItem {
		for i := range items {
			if items[i].ID == id {
				return &items[i]
			}
		}
		return nil
	}

	before := find(c.ActiveRows(fiscal.MustParse("2025-26"), Expense), "emi1")
	if before == nil || before.Budget != 9177 {
		t.Fatalf("emi1 in 2025-26 = %+v, want budget 9177", before)
	}

	after := find(c.ActiveRows(fiscal.MustParse("2026-27"), Expense), "emi1")
	if after == nil || after.Budget != 0 {
		t.Fatalf("emi1 in 2026-27 = %+v, want budget 0", after)
	}
	if after.Note != "Closed Dec 2026" {
		t.Errorf("emi1 note in 2026-27 = %q, want the closed note", after.Note)
	}

	huf := find(c.ActiveRows(fiscal.MustParse("2026-27"), Income), "tin_huf")
	if huf == nil || huf.Budget != 0 {
		t.Fatalf("tin_huf in 2026-27 = %+v, want budget 0", huf)
	}
}

func TestActiveRowsPreservesOrderAndIdentity(t *testing.T) {
	c := DefaultCatalog()
	for _, y := range []fiscal.Year{fiscal.New(2025), fiscal.New(2026), fiscal.New(2030)} {
		rows := c.ActiveRows(y, Expense)
		if len(rows) != len(c.Expense) {
			t.Fatalf("ActiveRows(%s) has %d rows, want %d", y, len(rows), len(c.Expense))
		}
		for i, row := range rows {
			if row.ID != c.Expense[i].ID || row.Label != c.Expense[i].Label {
				t.Errorf("ActiveRows(%s)[%d] = %s/%s, want %s", y, i, row.ID, row.Label, c.Expense[i].ID)
			}
		}
	}
}

func TestActiveRowsLastMatchingRuleWins(t *testing.T) {
	c := &Catalog{
		Expense: []CatalogRow{{
			LineItem: LineItem{ID: "rent", Label: "Rent", Budget: 1000},
			Rules: []Rule{
				{From: 2026, Budget: 1200},
				{From: 2027, Budget: 1500},
			},
		}},
	}
	testCases := []struct {
		year int
		want int64
	}{
		{2025, 1000},
		{2026, 1200},
		{2027, 1500},
		{2030, 1500},
	}
	for _, tc := range testCases {
		got := c.ActiveRows(fiscal.New(tc.year), Expense)[0].Budget
		if got != tc.want {
			t.Errorf("budget for FY starting %d = %d, want %d", tc.year, got, tc.want)
		}
	}
}

func TestValidateRejectsDuplicateLabels(t *testing.T) {
	c := &Catalog{
		Income: []CatalogRow{
			{LineItem: LineItem{ID: "a", Label: "Same", Budget: 1}},
		},
		Expense: []CatalogRow{
			{LineItem: LineItem{ID: "b", Label: "Same", Budget: 2}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Error("Validate() accepted duplicate labels, want error")
	}
	if err := DefaultCatalog().Validate(); err != nil {
		t.Errorf("DefaultCatalog().Validate() = %v, want nil", err)
	}
}

func TestInitialActuals(t *testing.T) {
	c := DefaultCatalog()
	y := fiscal.MustParse("2025-26")
	actuals := c.InitialActuals(y)

	wantEntries := 12 * (len(c.Income) + len(c.Expense))
	if len(actuals) != wantEntries {
		t.Fatalf("InitialActuals has %d entries, want %d", len(actuals), wantEntries)
	}
	if got := actuals["cook_Sep-25"]; got != 10000 {
		t.Errorf("cook September seed = %d, want budget 10000", got)
	}
	// fill-when-incurred rows seed to zero regardless of budget
	for _, m := range y.Months() {
		if got := actuals[actualKey("other", m)]; got != 0 {
			t.Errorf("other %s seed = %d, want 0", m, got)
		}
	}
	// the effective rule zeroes the seed in later years
	later := c.InitialActuals(fiscal.MustParse("2026-27"))
	if got := later["emi1_Apr-26"]; got != 0 {
		t.Errorf("emi1 seed in 2026-27 = %d, want 0", got)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind("income"); err != nil || k != Income {
		t.Errorf("ParseKind(income) = %v, %v", k, err)
	}
	if k, err := ParseKind("expense"); err != nil || k != Expense {
		t.Errorf("ParseKind(expense) = %v, %v", k, err)
	}
	if _, err := ParseKind("transfer"); err == nil {
		t.Error("ParseKind(transfer) should fail")
	}
}
