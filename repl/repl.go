package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/leftmike/sqlrun/engine"
	"github.com/leftmike/sqlrun/render"
	"github.com/leftmike/sqlrun/value"
)

// ReplSQL reads statements from rr, one per ';', and runs each against the
// db specifier, writing results to w. Errors are reported to w and do not
// end the session.
func ReplSQL(ctx context.Context, e *engine.Engine, db string, rr io.RuneReader,
	w io.Writer) {

	for {
		script, err := readStatement(rr)
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		if strings.TrimSpace(script) == "" {
			continue
		}

		pool, err := e.Acquire(ctx, db)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}

		tbl, err := engine.Run(ctx, pool, script, nil)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		WriteTable(w, tbl)
	}
}

// WriteTable renders tbl as text: pseudo-tables print as an update count,
// row results as an aligned table.
func WriteTable(w io.Writer, tbl value.Value) {
	headers, rows := render.TableParts(tbl)

	if cnt, ok := rowsAffected(headers, rows); ok {
		fmt.Fprintf(w, "%d rows updated\n", cnt)
		return
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)

	hdr := make([]string, 0, len(headers))
	for _, h := range headers {
		hdr = append(hdr, render.CellText(h))
	}
	tw.SetHeader(hdr)

	for _, r := range rows {
		cells, ok := r.(value.ArrayValue)
		if !ok {
			continue
		}
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, render.CellText(cell))
		}
		tw.Append(row)
	}

	tw.Render()
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func rowsAffected(headers, rows value.ArrayValue) (int64, bool) {
	if len(headers) != 1 || headers[0] != value.StringValue("rows_affected") ||
		len(rows) != 1 {

		return 0, false
	}
	row, ok := rows[0].(value.ArrayValue)
	if !ok || len(row) != 1 {
		return 0, false
	}
	cnt, ok := row[0].(value.Int64Value)
	return int64(cnt), ok
}

// TODO: ignore ';' inside quoted strings and comments.
func readStatement(rr io.RuneReader) (string, error) {
	var sb strings.Builder
	for {
		r, _, err := rr.ReadRune()
		if err == io.EOF && sb.Len() > 0 {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if r == ';' {
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}
