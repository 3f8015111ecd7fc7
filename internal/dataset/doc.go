// Package dataset holds the canonical in-memory table model: the column
// normalizer that turns a raw spreadsheet into a typed table, the Excel
// codec, and the registry guarding the single process-wide dataset slot.
package dataset
