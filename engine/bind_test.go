package engine_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/leftmike/sqlrun/engine"
	"github.com/leftmike/sqlrun/value"
)

func TestBindParams(t *testing.T) {
	cases := []struct {
		v      value.Value
		params []interface{}
	}{
		// A top-level array binds one parameter per element.
		{value.ArrayValue{value.Int64Value(1), value.StringValue("x"),
			value.BoolValue(true)},
			[]interface{}{int64(1), "x", true}},
		{value.ArrayValue{}, []interface{}{}},
		{value.ArrayValue{nil}, []interface{}{nil}},

		// Anything else binds as a single parameter.
		{nil, []interface{}{nil}},
		{value.Int64Value(5), []interface{}{int64(5)}},
		{value.Float64Value(1.5), []interface{}{1.5}},
		{value.BoolValue(false), []interface{}{false}},
		{value.StringValue("abc"), []interface{}{"abc"}},

		// Complex variants bind as JSON text.
		{value.ObjectValue{"a": value.Int64Value(1)}, []interface{}{`{"a":1}`}},
		{value.ArrayValue{value.ArrayValue{value.Int64Value(1), value.Int64Value(2)}},
			[]interface{}{`[1,2]`}},
		{value.TensorValue{1, 2.5}, []interface{}{`[1,2.5]`}},
		{value.MessageValue{"text": value.StringValue("hi")},
			[]interface{}{`{"text":"hi"}`}},
		{value.ErrorValue("failed"), []interface{}{`"failed"`}},

		// Unmarshalable values bind an empty string rather than failing.
		{value.TensorValue{math.NaN()}, []interface{}{""}},
	}

	for _, c := range cases {
		params := engine.BindParams(c.v)
		if !reflect.DeepEqual(params, c.params) {
			t.Errorf("BindParams(%#v) got %#v want %#v", c.v, params, c.params)
		}
	}
}
