package schedule

import "fmt"

// LoadError reports a snapshot that is missing, unreadable or not valid JSON.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load schedule %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports a record that lacks a field the report needs.
// Path locates the record in the document, Field is relative to it.
type SchemaError struct {
	Path  string
	Field string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schedule: missing field %q", e.Field)
	}
	return fmt.Sprintf("schedule %s: missing field %q", e.Path, e.Field)
}

// FormatError reports an estimated departure that is not an ISO-8601 timestamp.
type FormatError struct {
	Path  string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("schedule %s: invalid timestamp %q: %v", e.Path, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
