package engine

import "fmt"

// SchemaError is returned when a table or view cannot be created, typically
// because it already exists.
type SchemaError struct {
	Object string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("create %s: %v", e.Object, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ConstraintError is returned when a row violates a key or not-null
// constraint. The whole run is rolled back.
type ConstraintError struct {
	Table string
	Line  int // CSV line of the offending row
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint violation in %s (line %d): %v", e.Table, e.Line, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }
