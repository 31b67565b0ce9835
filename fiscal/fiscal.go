// Package fiscal models the April-to-March fiscal year and its month
// labels, the only calendar arithmetic the ledger needs.
package fiscal

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNames are the fiscal month abbreviations in fiscal order,
// starting in April.
var monthNames = [12]string{"Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}

// Year represents a fiscal year running April 1 to March 31, identified
// by a "YYYY-YY" string such as "2025-26". The zero value is not a valid
// year; construct one with New or Parse.
type Year struct {
	start int // calendar year containing April
}

// New returns the fiscal year starting in April of the given calendar year.
func New(start int) Year { return Year{start: start} }

// Start returns the calendar year containing the fiscal year's April.
func (y Year) Start() int { return y.start }

// String formats the year in its standard "YYYY-YY" form.
func (y Year) String() string {
	return fmt.Sprintf("%04d-%02d", y.start, (y.start+1)%100)
}

// Next returns the successor fiscal year; "2025-26" becomes "2026-27"
// and "2099-00" becomes "2100-01".
func (y Year) Next() Year { return Year{start: y.start + 1} }

// Before reports whether y starts before x.
func (y Year) Before(x Year) bool { return y.start < x.start }

// Compare orders two fiscal years chronologically.
func (y Year) Compare(x Year) int {
	switch {
	case y.start < x.start:
		return -1
	case y.start > x.start:
		return 1
	default:
		return 0
	}
}

// Months returns the 12 month labels of the fiscal year in order,
// "Apr-25" through "Mar-26". April to December carry the first calendar
// year's suffix, January to March the second's.
func (y Year) Months() []string {
	labels := make([]string, 0, 12)
	for i, name := range monthNames {
		suffix := y.start % 100
		if i >= 9 { // Jan, Feb, Mar fall in the second calendar year
			suffix = (y.start + 1) % 100
		}
		labels = append(labels, fmt.Sprintf("%s-%02d", name, suffix))
	}
	return labels
}

// Contains reports whether the calendar month of t falls inside y.
func (y Year) Contains(t time.Time) bool {
	start := time.Date(y.start, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	m := FirstOfMonth(t)
	return !m.Before(start) && m.Before(end)
}

// Parse parses a "YYYY-YY" fiscal year identifier. It is lenient about
// the suffix width ("2025-26" and "2025-2026" are both accepted, as
// hand-edited spreadsheets produce either), but the suffix must denote
// the calendar year following the start year.
func Parse(s string) (Year, error) {
	first, second, ok := strings.Cut(s, "-")
	if !ok {
		return Year{}, fmt.Errorf("invalid fiscal year %q: want form \"YYYY-YY\"", s)
	}
	start, err := strconv.Atoi(first)
	if err != nil || len(first) != 4 {
		return Year{}, fmt.Errorf("invalid fiscal year %q: want form \"YYYY-YY\"", s)
	}
	end, err := strconv.Atoi(second)
	if err != nil {
		return Year{}, fmt.Errorf("invalid fiscal year %q: want form \"YYYY-YY\"", s)
	}
	switch len(second) {
	case 2:
		if (start+1)%100 != end {
			return Year{}, fmt.Errorf("invalid fiscal year %q: %q does not follow %d", s, second, start)
		}
	case 4:
		if start+1 != end {
			return Year{}, fmt.Errorf("invalid fiscal year %q: %q does not follow %d", s, second, start)
		}
	default:
		return Year{}, fmt.Errorf("invalid fiscal year %q: want form \"YYYY-YY\"", s)
	}
	return Year{start: start}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Year {
	y, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return y
}

// MarshalText implements encoding.TextMarshaler, so a Year can be a JSON
// value or a JSON map key.
func (y Year) MarshalText() ([]byte, error) { return []byte(y.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (y *Year) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*y = parsed
	return nil
}

var _ encoding.TextMarshaler = (*Year)(nil)
var _ encoding.TextUnmarshaler = (*Year)(nil)

// MonthLabel formats the calendar month of t as a short label like
// "Jan-27", the form used by forecast rows.
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s-%02d", t.Month().String()[:3], t.Year()%100)
}

// CycleMonths returns the 12 bare month labels "Apr" through "Mar" used
// by auxiliary entities, which track a single rolling cycle rather than
// specific fiscal years.
func CycleMonths() []string {
	labels := make([]string, 12)
	copy(labels, monthNames[:])
	return labels
}

// FirstOfMonth normalizes t to midnight UTC on the first of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the first of the month n months after t.
func AddMonths(t time.Time, n int) time.Time {
	return FirstOfMonth(t).AddDate(0, n, 0)
}
