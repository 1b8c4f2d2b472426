package table_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/leftmike/sqlrun/table"
	"github.com/leftmike/sqlrun/value"
)

func testTable() value.Value {
	return value.ObjectValue{
		"headers": value.ArrayValue{value.StringValue("a"), value.StringValue("b")},
		"rows": value.ArrayValue{
			value.ArrayValue{value.Int64Value(1), value.Int64Value(2)},
			value.ArrayValue{value.Int64Value(3), value.Int64Value(4)},
			value.ArrayValue{value.Int64Value(5), value.Int64Value(6)},
		},
	}
}

func invalidValue(t *testing.T, what string, err error) {
	t.Helper()

	if err == nil {
		t.Errorf("%s did not fail", what)
		return
	}
	var ive *table.InvalidValueError
	if !errors.As(err, &ive) {
		t.Errorf("%s got %T want *table.InvalidValueError", what, err)
	}
}

func TestRows(t *testing.T) {
	rows, err := table.Rows(testTable())
	if err != nil {
		t.Fatalf("Rows() failed with %s", err)
	}
	want := value.ArrayValue{
		value.ArrayValue{value.Int64Value(1), value.Int64Value(2)},
		value.ArrayValue{value.Int64Value(3), value.Int64Value(4)},
		value.ArrayValue{value.Int64Value(5), value.Int64Value(6)},
	}
	if !reflect.DeepEqual(rows, value.Value(want)) {
		t.Errorf("Rows() got %s want %s", value.Format(rows), value.Format(want))
	}

	_, err = table.Rows(value.StringValue("not a table"))
	invalidValue(t, "Rows(not a table)", err)

	_, err = table.Rows(value.ObjectValue{"rows": value.StringValue("nope")})
	invalidValue(t, "Rows(rows not an array)", err)
}

func TestRow(t *testing.T) {
	row, err := table.Row(testTable(), 2)
	if err != nil {
		t.Fatalf("Row(2) failed with %s", err)
	}
	want := value.ArrayValue{value.Int64Value(5), value.Int64Value(6)}
	if !reflect.DeepEqual(row, value.Value(want)) {
		t.Errorf("Row(2) got %s want %s", value.Format(row), value.Format(want))
	}

	_, err = table.Row(testTable(), 5)
	invalidValue(t, "Row(5)", err)
	if err != nil && !strings.Contains(err.Error(), "5") {
		t.Errorf("Row(5) error %q does not identify the index", err)
	}

	_, err = table.Row(testTable(), -1)
	invalidValue(t, "Row(-1)", err)

	_, err = table.Row(value.ObjectValue{}, 0)
	invalidValue(t, "Row(missing rows)", err)
}

func TestSelect(t *testing.T) {
	// Output columns follow the requested order, not the header order.
	out, err := table.Select(testTable(), "b , a")
	if err != nil {
		t.Fatalf("Select(b, a) failed with %s", err)
	}
	want := value.ArrayValue{
		value.ArrayValue{value.Int64Value(2), value.Int64Value(1)},
		value.ArrayValue{value.Int64Value(4), value.Int64Value(3)},
		value.ArrayValue{value.Int64Value(6), value.Int64Value(5)},
	}
	if !reflect.DeepEqual(out, value.Value(want)) {
		t.Errorf("Select(b, a) got %s want %s", value.Format(out), value.Format(want))
	}

	// A single result row is returned bare.
	one := value.ObjectValue{
		"headers": value.ArrayValue{value.StringValue("a"), value.StringValue("b")},
		"rows": value.ArrayValue{
			value.ArrayValue{value.Int64Value(1), value.Int64Value(2)},
		},
	}
	out, err = table.Select(one, "b,a")
	if err != nil {
		t.Fatalf("Select(b,a) failed with %s", err)
	}
	bare := value.ArrayValue{value.Int64Value(2), value.Int64Value(1)}
	if !reflect.DeepEqual(out, value.Value(bare)) {
		t.Errorf("Select(b,a) got %s want %s", value.Format(out), value.Format(bare))
	}

	_, err = table.Select(testTable(), "a, c")
	invalidValue(t, "Select(a, c)", err)
	if err != nil && !strings.Contains(err.Error(), "'c'") {
		t.Errorf("Select(a, c) error %q does not name the missing column", err)
	}

	_, err = table.Select(value.ObjectValue{
		"headers": value.ArrayValue{value.StringValue("a")},
		"rows":    value.ArrayValue{value.StringValue("not a row")},
	}, "a")
	invalidValue(t, "Select(row not an array)", err)

	_, err = table.Select(value.Int64Value(1), "a")
	invalidValue(t, "Select(not a table)", err)
}
