// Package formatter renders a report for people and for tools.
//
// This package is organized into:
// - table.go: fixed-width table with a summary line
// - json.go: indented JSON dump of the selected entries
// - wrapper.go: the full report, table followed by the labelled dump
//
// Columns are padded but never truncated; an overlong value pushes the rest of its row right.
package formatter
