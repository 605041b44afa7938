// Package validation exposes the reconciliation engine over HTTP.
//
// It is a thin boundary layer: request parsing, environment-label
// normalization, and response shaping live here, while every comparison
// decision belongs to core/validate. The feature registers three routes:
//
//   - POST /api/validate: run the pipeline and return the JSON report
//   - POST /api/export-excel: run the pipeline and return an xlsx report
//   - GET  /api/reference: static documentation of the check semantics
//
// Upload size limits are enforced here (by the Fiber body limit), before any
// bytes reach the table loader.
package validation
