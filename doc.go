// Package homebudget implements a single household's cash-flow ledger:
// budgeted and actual monthly amounts per line item across fiscal years,
// auxiliary bookkeeping entities, net worth, savings goals and a rolling
// cash-flow forecast.
//
// The package is a pure engine. All derived figures (month totals,
// fiscal-year totals, goal progress, forecasts) are recomputed from the
// State on demand and never stored. The only persisted artifacts are the
// JSON state file (Save/Load) and the spreadsheet workbook
// (ExportWorkbook/ImportWorkbook), which must round-trip exactly.
//
// All monetary amounts are int64 whole rupees. Divisions that produce
// user-facing figures (monthly averages, percentages) round half-up;
// a fiscal-year total and twelve times its rounded monthly average may
// therefore disagree by a few rupees, which is accepted behavior.
package homebudget
