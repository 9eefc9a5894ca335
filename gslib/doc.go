// Package gslib reads and writes the small numeric tables mining tools
// exchange: the Geo-EAS ("GSLIB") format used by the GSLIB family of
// geostatistics programs, and plain headered CSV.
//
// # Geo-EAS layout
//
//	line 1          free-text title
//	line 2          number of variables, nvar (first token)
//	next nvar lines one variable name each
//	remaining lines one row of nvar whitespace-separated numbers
//
// Both readers produce the same Table value: a title (empty for CSV),
// ordered column names, and dense float64 rows. Rows with the wrong
// column count or non-numeric fields are rejected with the offending
// line number attached.
//
// All failures surface as package sentinel errors; branch with
// errors.Is.
package gslib
