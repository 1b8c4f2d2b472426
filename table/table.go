// Package table implements stateless operators over a table value: an
// object with a "headers" array of strings and a "rows" array of cell
// arrays. Operators only read their input and build new values.
package table

import (
	"fmt"
	"strings"

	"github.com/leftmike/sqlrun/value"
)

// InvalidValueError reports a structural problem in a consumed table value;
// it is distinct from the backend failures reported by the engine.
type InvalidValueError struct {
	Msg string
}

func (e *InvalidValueError) Error() string {
	return "table: " + e.Msg
}

func invalidf(format string, args ...interface{}) error {
	return &InvalidValueError{Msg: fmt.Sprintf(format, args...)}
}

func field(tbl value.Value, name string) (value.ArrayValue, error) {
	obj, ok := tbl.(value.ObjectValue)
	if !ok {
		return nil, invalidf("missing '%s' field", name)
	}
	arr, ok := obj[name].(value.ArrayValue)
	if !ok {
		return nil, invalidf("missing '%s' field", name)
	}
	return arr, nil
}

// Rows returns the rows of tbl as a bare array.
func Rows(tbl value.Value) (value.Value, error) {
	rows, err := field(tbl, "rows")
	if err != nil {
		return nil, err
	}

	out := make(value.ArrayValue, len(rows))
	copy(out, rows)
	return out, nil
}

// Row returns the row of tbl at the zero-based index.
func Row(tbl value.Value, index int) (value.Value, error) {
	rows, err := field(tbl, "rows")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(rows) {
		return nil, invalidf("row index %d out of bounds", index)
	}
	return rows[index], nil
}

// Select projects the columns named in the comma-separated cols out of every
// row of tbl, ordered as requested rather than as the headers order them.
// A single result row is returned bare instead of wrapped in an array.
func Select(tbl value.Value, cols string) (value.Value, error) {
	names := strings.Split(cols, ",")
	for idx := range names {
		names[idx] = strings.TrimSpace(names[idx])
	}

	headers, err := field(tbl, "headers")
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0, len(names))
	for _, name := range names {
		found := -1
		for hdx, hdr := range headers {
			if s, ok := hdr.(value.StringValue); ok && string(s) == name {
				found = hdx
				break
			}
		}
		if found < 0 {
			return nil, invalidf("column '%s' not found", name)
		}
		indices = append(indices, found)
	}

	rows, err := field(tbl, "rows")
	if err != nil {
		return nil, err
	}

	out := make(value.ArrayValue, 0, len(rows))
	for _, r := range rows {
		row, ok := r.(value.ArrayValue)
		if !ok {
			return nil, invalidf("row is not an array")
		}

		selected := make(value.ArrayValue, 0, len(indices))
		for _, idx := range indices {
			var v value.Value
			if idx < len(row) {
				v = row[idx]
			}
			selected = append(selected, v)
		}
		out = append(out, selected)
	}

	if len(out) == 1 {
		return out[0], nil
	}
	return out, nil
}
