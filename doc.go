// Package cashbook implements a local-first personal finance ledger: income
// and expense entries, categories, accounts and user settings, stored as a
// single human-readable JSON document on disk.
//
// The core functionalities include:
//   - Document model: the in-memory schema and its invariants (non-negative
//     minor-unit amounts, referential integrity between entries and their
//     category and account, a single default account).
//   - Persistence: loading and saving the whole document to one file, with
//     default-document bootstrapping on first run and silent recovery from a
//     corrupt data file.
//   - Backups: timestamped snapshots of the data file, listing them newest
//     first, and restore-by-overwrite.
//   - Derived views: pure computations over a document snapshot such as
//     account balances, date-range filtering and category partitioning.
//
// This package serves as the foundational logic for the `cbk` command-line
// tool; the CLI layer carries no logic of its own.
package cashbook
