// Package validate implements the reconciliation engine: four checks over a
// source and a target table, folded into one ValidationReport.
//
// # Checks
//
// The engine runs exactly four checks, in dependency order:
//
//   - File Validation: gross shape comparison (row and column counts).
//   - Schema Validation: missing/extra columns and inferred-type mismatches.
//   - Column Statistics: per-column aggregate comparison (numeric sums with
//     a floating-point tolerance, distinct counts for everything else).
//   - Row-Level Differences: positional cell-by-cell comparison over the
//     columns common to both tables.
//
// Every disagreement the checks find is a finding inside the report, carried
// as a pass/warning/fail status. Only table-load failures abort a run.
//
// # Concurrency
//
// A run owns its two tables end-to-end, so the engine is safe to invoke from
// any number of concurrent requests without locking. Within a run the two
// loads execute in parallel, the file and schema checks execute in parallel,
// and the statistics and row checks execute in parallel once the schema
// alignment they depend on is available. Long row scans observe context
// cancellation at row granularity.
package validate
