// Package diagnostic provides structured errors, warnings and notes produced
// while compiling mapping files and while flattening resources.
//
// Key capabilities:
//   - Mapping file errors with "did you mean" suggestions
//   - Per-attribute drop reports (type mismatches, unparsable dates)
//   - Non-fatal coercions such as a non-object info payload
package diagnostic
