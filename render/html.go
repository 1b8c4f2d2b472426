// Package render converts table values to a textual representation.
package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/leftmike/sqlrun/value"
)

// Large tensors render their first and last tensorShown elements.
const tensorShown = 5

// CellText returns the display text of one table cell.
func CellText(v value.Value) string {
	switch v := v.(type) {
	case nil:
		return value.NullString
	case value.BoolValue:
		if v {
			return value.TrueString
		}
		return value.FalseString
	case value.Int64Value:
		return strconv.FormatInt(int64(v), 10)
	case value.Float64Value:
		return fmt.Sprintf("%v", float64(v))
	case value.StringValue:
		return string(v)
	case value.ArrayValue:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			parts = append(parts, CellText(elem))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case value.TensorValue:
		return tensorText(v)
	default:
		b, err := value.ToJSON(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func tensorText(t value.TensorValue) string {
	parts := make([]string, 0, 2*tensorShown+1)
	if len(t) <= 2*tensorShown {
		for _, f := range t {
			parts = append(parts, fmt.Sprintf("%v", f))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	for _, f := range t[:tensorShown] {
		parts = append(parts, fmt.Sprintf("%v", f))
	}
	parts = append(parts, "...")
	for _, f := range t[len(t)-tensorShown:] {
		parts = append(parts, fmt.Sprintf("%v", f))
	}
	return fmt.Sprintf("[%s, size = %d]", strings.Join(parts, ", "), len(t))
}

// TableParts extracts the optional headers and rows arrays of a table value.
func TableParts(tbl value.Value) (value.ArrayValue, value.ArrayValue) {
	obj, ok := tbl.(value.ObjectValue)
	if !ok {
		return nil, nil
	}
	headers, _ := obj["headers"].(value.ArrayValue)
	rows, _ := obj["rows"].(value.ArrayValue)
	return headers, rows
}

// HTML renders a table value as a self-contained HTML table fragment.
func HTML(tbl value.Value) string {
	headers, rows := TableParts(tbl)
	return HTMLTable(headers, rows)
}

// HTMLTable renders the headers and rows as an HTML table fragment. Either
// may be empty to skip its section. Cells are wrapped in preformatted blocks
// so embedded whitespace survives; all text is entity-escaped.
func HTMLTable(headers, rows value.ArrayValue) string {
	var sb strings.Builder
	sb.WriteString("<table border=\"1\" style=\"border-collapse:collapse;\">\n")

	if len(headers) > 0 {
		sb.WriteString("<thead>\n<tr>\n")
		for _, hdr := range headers {
			var s string
			if sv, ok := hdr.(value.StringValue); ok {
				s = string(sv)
			}
			fmt.Fprintf(&sb, "<th>%s</th>\n", html.EscapeString(s))
		}
		sb.WriteString("</tr>\n</thead>\n")
	}

	if len(rows) > 0 {
		sb.WriteString("<tbody>\n")
		for _, row := range rows {
			sb.WriteString("<tr>\n")
			if cells, ok := row.(value.ArrayValue); ok {
				for _, cell := range cells {
					fmt.Fprintf(&sb,
						"<td><pre style=\"margin:0;white-space:pre-wrap;\">%s</pre></td>\n",
						html.EscapeString(CellText(cell)))
				}
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</tbody>\n")
	}

	sb.WriteString("</table>\n")
	return sb.String()
}
