// Package renderer turns engine outputs into markdown reports. It only
// reads from the state passed in; all figures come from the engine.
package renderer

import (
	"github.com/Rhymond/go-money"
)

// INR formats a whole-rupee amount for display.
func INR(v int64) string {
	// go-money counts in paise.
	return money.New(v*100, money.INR).Display()
}

// SignedINR formats an amount with an explicit sign, the convention for
// net figures.
func SignedINR(v int64) string {
	if v >= 0 {
		return "+" + INR(v)
	}
	return INR(v)
}
