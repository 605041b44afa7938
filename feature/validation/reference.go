package validation

// referenceDocument is the static description of the check semantics served
// by GET /api/reference. It documents behavior; it is not derived from runs.
const referenceDocument = `# Validation Checks Reference

DataSure compares a source export against a target export of the same
logical report and produces one report with four checks. Overall status is
the worst individual status: fail beats warning beats pass.

## File Validation

Compares row and column counts. Any difference is a **fail** because every
other check depends on comparable shape. The raw counts for both files are
always included.

## Schema Validation

Compares column names by exact string match (case- and whitespace-sensitive,
so "Employee Name" and "Employee Name " are reported, not merged) and the
inferred type of each common column. A column is numeric when every non-null
value in it parses as a number; otherwise it is text.

- Columns present only in the source: **fail** (data was lost).
- Columns present only in the target: **warning** (informational).
- Common columns whose types disagree: **fail**.

## Column Statistics

For every column present in both files:

- Numeric columns: the sums of both sides must agree within a small
  tolerance (absolute 1e-6, relative 1e-9) that absorbs floating-point
  rounding without hiding real discrepancies. Null cells are excluded from
  the sum, not counted as zero.
- Text columns: the counts of distinct non-null values must match exactly.

Any mismatching column makes this check **fail**.

## Row-Level Differences

Rows are compared by position: row N of the source against row N of the
target, over the common columns only. If the row counts differ, or there are
no common columns, the comparison is skipped with a **warning** instead of
producing meaningless differences.

Numeric cells compare under the same tolerance as the statistics check;
everything else compares as case-sensitive text with null markers treated as
empty. Every disagreeing cell is one difference; displays show a bounded
prefix but the reported total is always exact.
`
