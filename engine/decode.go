package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leftmike/sqlrun/value"
)

type category int

const (
	otherCategory category = iota
	boolCategory
	intCategory
	floatCategory
	textCategory
	blobCategory
)

// Declared type names reported by the sqlite, mysql, and postgres backends,
// uppercased. Names not listed fall into otherCategory.
var typeCategories = map[string]category{
	"BOOL":    boolCategory,
	"BOOLEAN": boolCategory,

	"INTEGER":   intCategory,
	"INT":       intCategory,
	"INT4":      intCategory,
	"INT8":      intCategory,
	"BIGINT":    intCategory,
	"SMALLINT":  intCategory,
	"TINYINT":   intCategory,
	"MEDIUMINT": intCategory,

	"REAL":             floatCategory,
	"FLOAT":            floatCategory,
	"FLOAT4":           floatCategory,
	"FLOAT8":           floatCategory,
	"DOUBLE":           floatCategory,
	"DOUBLE PRECISION": floatCategory,
	"NUMERIC":          floatCategory,
	"DECIMAL":          floatCategory,

	"TEXT":       textCategory,
	"VARCHAR":    textCategory,
	"CHAR":       textCategory,
	"BPCHAR":     textCategory,
	"NAME":       textCategory,
	"CITEXT":     textCategory,
	"LONGTEXT":   textCategory,
	"MEDIUMTEXT": textCategory,
	"TINYTEXT":   textCategory,

	"BLOB":       blobCategory,
	"BYTEA":      blobCategory,
	"BINARY":     blobCategory,
	"VARBINARY":  blobCategory,
	"LONGBLOB":   blobCategory,
	"MEDIUMBLOB": blobCategory,
	"TINYBLOB":   blobCategory,
}

// decodeCell converts a raw backend cell into a value using the declared
// type name of its column. A failed typed decode degrades to the literal
// type name as a string; decodeCell never fails.
func decodeCell(typeName string, raw interface{}) value.Value {
	if raw == nil {
		return nil
	}

	// Some backends report no declared type for computed columns; decode
	// those by the raw driver value alone.
	if typeName == "" {
		return decodeRaw(raw)
	}

	switch typeCategories[strings.ToUpper(typeName)] {
	case boolCategory:
		if b, ok := asBool(raw); ok {
			return value.BoolValue(b)
		}
	case intCategory:
		if i, ok := asInt64(raw); ok {
			return value.Int64Value(i)
		}
	case floatCategory:
		if f, ok := asFloat64(raw); ok {
			return value.Float64Value(f)
		}
	case textCategory:
		if s, ok := asString(raw); ok {
			return value.StringValue(s)
		}
	case blobCategory:
		if b, ok := asBytes(raw); ok {
			arr := make(value.ArrayValue, 0, len(b))
			for _, byt := range b {
				arr = append(arr, value.Int64Value(byt))
			}
			return arr
		}
	default:
		if s, ok := asString(raw); ok {
			return value.StringValue(s)
		}
	}

	return value.StringValue(typeName)
}

func decodeRaw(raw interface{}) value.Value {
	switch raw := raw.(type) {
	case bool:
		return value.BoolValue(raw)
	case int64:
		return value.Int64Value(raw)
	case float64:
		return value.Float64Value(raw)
	case string:
		return value.StringValue(raw)
	case []byte:
		return value.StringValue(raw)
	case time.Time:
		return value.StringValue(raw.Format(time.RFC3339Nano))
	default:
		return value.StringValue(fmt.Sprintf("%v", raw))
	}
}

func asBool(raw interface{}) (bool, bool) {
	switch raw := raw.(type) {
	case bool:
		return raw, true
	case int64:
		return raw != 0, true
	case string:
		b, err := strconv.ParseBool(raw)
		return b, err == nil
	case []byte:
		b, err := strconv.ParseBool(string(raw))
		return b, err == nil
	}
	return false, false
}

func asInt64(raw interface{}) (int64, bool) {
	switch raw := raw.(type) {
	case int64:
		return raw, true
	case string:
		i, err := strconv.ParseInt(raw, 10, 64)
		return i, err == nil
	case []byte:
		i, err := strconv.ParseInt(string(raw), 10, 64)
		return i, err == nil
	}
	return 0, false
}

func asFloat64(raw interface{}) (float64, bool) {
	switch raw := raw.(type) {
	case float64:
		return raw, true
	case int64:
		return float64(raw), true
	case string:
		f, err := strconv.ParseFloat(raw, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(raw), 64)
		return f, err == nil
	}
	return 0, false
}

func asString(raw interface{}) (string, bool) {
	switch raw := raw.(type) {
	case string:
		return raw, true
	case []byte:
		return string(raw), true
	}
	return "", false
}

func asBytes(raw interface{}) ([]byte, bool) {
	switch raw := raw.(type) {
	case []byte:
		return raw, true
	case string:
		return []byte(raw), true
	}
	return nil, false
}
