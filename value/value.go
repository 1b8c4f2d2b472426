package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

const (
	NullString  = "null"
	TrueString  = "true"
	FalseString = "false"
)

// Value is the canonical value passed between operations and stored in table
// cells. A nil Value is the unit (null) variant.
type Value interface {
	fmt.Stringer
}

type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return TrueString
	}
	return FalseString
}

type Int64Value int64

func (i Int64Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

type Float64Value float64

func (f Float64Value) String() string {
	return fmt.Sprintf("%v", float64(f))
}

type StringValue string

func (s StringValue) String() string {
	return fmt.Sprintf("'%s'", string(s))
}

type ArrayValue []Value

func (a ArrayValue) String() string {
	var buf bytes.Buffer
	buf.WriteRune('[')
	for idx, v := range a {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(Format(v))
	}
	buf.WriteRune(']')
	return buf.String()
}

type ObjectValue map[string]Value

func (o ObjectValue) String() string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteRune('{')
	for idx, key := range keys {
		if idx > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", key, Format(o[key]))
	}
	buf.WriteRune('}')
	return buf.String()
}

// TensorValue is an ordered sequence of numeric elements.
type TensorValue []float64

func (t TensorValue) String() string {
	var buf bytes.Buffer
	buf.WriteRune('[')
	for idx, f := range t {
		if idx > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%v", f)
	}
	buf.WriteRune(']')
	return buf.String()
}

// MessageValue, ErrorValue, and ImageValue are opaque variants; operations
// treat them uniformly as complex values and only ever serialize them.
type MessageValue map[string]Value

func (m MessageValue) String() string {
	return ObjectValue(m).String()
}

type ErrorValue string

func (e ErrorValue) String() string {
	return fmt.Sprintf("error: %s", string(e))
}

type ImageValue []byte

func (i ImageValue) String() string {
	return fmt.Sprintf("image: %d bytes", len(i))
}

// Format returns the display form of v; a nil Value formats as null.
func Format(v Value) string {
	if v == nil {
		return NullString
	}
	return v.String()
}

// ToJSON returns the JSON text of v. Every variant marshals through its
// underlying Go kind; a nil Value marshals as JSON null.
func ToJSON(v Value) ([]byte, error) {
	return json.Marshal(v)
}
