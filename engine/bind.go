package engine

import (
	"github.com/leftmike/sqlrun/value"
)

// BindParams converts a value into an ordered list of statement parameters.
// A top-level array binds each element as its own positional parameter;
// anything else binds as a single parameter.
func BindParams(v value.Value) []interface{} {
	if arr, ok := v.(value.ArrayValue); ok {
		params := make([]interface{}, 0, len(arr))
		for _, elem := range arr {
			params = append(params, bindParam(elem))
		}
		return params
	}
	return []interface{}{bindParam(v)}
}

// bindParam maps one value to a driver parameter. Scalar variants bind
// natively; everything else binds as its JSON text, degrading to an empty
// string if it won't marshal. Binding never fails.
func bindParam(v value.Value) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case value.BoolValue:
		return bool(v)
	case value.Int64Value:
		return int64(v)
	case value.Float64Value:
		return float64(v)
	case value.StringValue:
		return string(v)
	default:
		b, err := value.ToJSON(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
