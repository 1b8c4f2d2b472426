package value_test

import (
	"testing"

	"github.com/leftmike/sqlrun/value"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		v value.Value
		s string
	}{
		{nil, "null"},
		{value.BoolValue(true), "true"},
		{value.BoolValue(false), "false"},
		{value.Int64Value(123), "123"},
		{value.Int64Value(-45), "-45"},
		{value.Float64Value(1.5), "1.5"},
		{value.StringValue("abc"), "'abc'"},
		{value.ArrayValue{value.Int64Value(1), nil, value.StringValue("x")},
			"[1, null, 'x']"},
		{value.ObjectValue{"b": value.StringValue("x"), "a": value.Int64Value(1)},
			"{a: 1, b: 'x'}"},
		{value.TensorValue{1.5, 2}, "[1.5, 2]"},
		{value.ErrorValue("failed"), "error: failed"},
	}

	for _, c := range cases {
		s := value.Format(c.v)
		if s != c.s {
			t.Errorf("Format(%#v) got %s want %s", c.v, s, c.s)
		}
	}
}

func TestToJSON(t *testing.T) {
	cases := []struct {
		v value.Value
		j string
	}{
		{nil, `null`},
		{value.BoolValue(true), `true`},
		{value.Int64Value(123), `123`},
		{value.Float64Value(1.5), `1.5`},
		{value.StringValue("abc"), `"abc"`},
		{value.ArrayValue{value.Int64Value(1), value.StringValue("x"), nil}, `[1,"x",null]`},
		{value.ObjectValue{"a": value.Int64Value(1)}, `{"a":1}`},
		{value.TensorValue{1, 2.5}, `[1,2.5]`},
		{value.MessageValue{"text": value.StringValue("hi")}, `{"text":"hi"}`},
		{value.ErrorValue("failed"), `"failed"`},
	}

	for _, c := range cases {
		b, err := value.ToJSON(c.v)
		if err != nil {
			t.Errorf("ToJSON(%#v) failed with %s", c.v, err)
		} else if string(b) != c.j {
			t.Errorf("ToJSON(%#v) got %s want %s", c.v, string(b), c.j)
		}
	}
}
