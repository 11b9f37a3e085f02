// Package utils provides internal utility functions for the stop schedule report.
// This package is not intended to be imported by external code.
//
// It contains:
//   - ISO-8601 timestamp parsing
//   - Clock formatting for report rows
package utils
