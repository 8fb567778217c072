// Package sensor defines the canonical air-quality record and the rules for
// normalizing spreadsheet rows into it.
//
// Normalization:
//   - Maps sheet column headers to canonical fields through FieldMap
//   - Drops columns FieldMap does not know
//   - Degrades unparsable or missing numeric cells to zero
//   - Always reports bacteria as zero (the chamber sheet has no such column)
package sensor
