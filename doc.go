// Package fintrack provides a personal finance ledger: a flat, append-only
// list of deposits and payments persisted as pipe-delimited text, and the
// queries to review it.
//
// The core functionalities include:
//   - Ledger Management: loading records from their text form, adding new
//     deposits and payments, and exposing them most recent first.
//   - Queries: composable filters (date range, vendor, description keyword,
//     exact amount) folded by conjunction over the sorted ledger.
//   - Canned Reports: month-to-date, previous month, year-to-date and
//     previous year ranges computed from a single reference day.
//   - Data Persistence: one record per line, "date|time|description|vendor|amount",
//     appended to the ledger file as transactions are added.
//
// It is not a double-entry accounting system: there are no accounts, no
// balances and no reconciliation.
//
// This package serves as the foundational logic for the `ft` command-line
// tool.
package fintrack
