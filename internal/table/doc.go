// Package table builds variant-combination tables and writes them as CSV.
//
// A table is described by an ordered list of [ColumnSpec] values and a flat
// list of variant values. [Generator.Generate] partitions the variants by
// column and enumerates every combination, producing a [Table] whose first
// two records are the column titles and names. [Write], [WriteFile] and the
// [Destination] implementations serialize the result.
//
// All failures are reported as one of three kinds that callers can test with
// errors.Is: [ErrShapeMismatch], [ErrCapacityExceeded] and [ErrIO].
package table
