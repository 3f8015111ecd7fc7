// Package analytics implements the area-scoped query engine over a
// normalized dataset: area resolution, summary statistics, chart series,
// paginated table views, comparisons and exports.
//
// Every operation here is a pure read over a table snapshot. Malformed or
// missing data degrades to tagged empty payloads (see the Source* constants)
// instead of errors; the service layer decides how to report them.
package analytics
