// Package fintrack provides the core types and functions for tracking a
// personal financial dashboard. It is designed to be local-first: the user
// owns all data, stored in plain, human-readable files.
//
// The core functionalities include:
//   - Dashboard Management: ten fixed categories of labeled monetary entries
//     (cash accounts, receivables, loans, subscriptions, utilities, and other
//     recurring obligations), mutated through pure reducer functions.
//   - Metrics Engine: deterministic aggregation of the dashboard into derived
//     figures such as usable funds, total and unpaid expenses, remaining
//     balance, a safety ratio, and a multi-month balance projection.
//   - Data Persistence: encoding and decoding of the dashboard to and from a
//     human-readable JSON store, with a built-in default dataset as fallback
//     when the store is missing or unreadable.
//   - Import/Export: CSV export of all entries, and import of dumps produced
//     by the original browser-based tracker.
//
// This package serves as the foundational logic for the `fintrack`
// command-line tool; the AI narration of the numbers lives in the insight
// package.
package fintrack
