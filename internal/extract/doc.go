// Package extract turns located page sections into typed league records.
//
// Each page shape has its own extractor with an explicit zero-based
// column-index contract documented next to the parser. The extractors share
// a few rules: decimal separators are commas in the source data, link text
// wins over plain cell text for names, rows without a resolvable name are
// skipped, and a single malformed cell defaults to zero instead of aborting
// the surrounding table.
package extract
