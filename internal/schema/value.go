package schema

import (
	"fmt"
	"strconv"
)

// ParseError reports a CSV value that cannot be converted to its column type.
type ParseError struct {
	Table  string
	Line   int
	Column string
	Type   ColumnType
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s line %d: column %s: cannot parse %q as %s: %v",
		e.Table, e.Line, e.Column, e.Value, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseValue converts a raw CSV field into the Go value bound for the column.
// Empty input is NULL (nil) for every column type.
func ParseValue(col *Column, raw string) (interface{}, error) {
	if raw == "" {
		return nil, nil
	}
	switch col.Type {
	case Integer:
		return strconv.ParseInt(raw, 10, 64)
	case Real:
		return strconv.ParseFloat(raw, 64)
	case Boolean:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}
