package engine

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/leftmike/sqlrun/value"
)

// Run executes script against pool with the given positional parameters and
// returns the result as a table value: an object with a "headers" array of
// strings and a "rows" array of cell arrays. A mutating statement produces a
// pseudo-table with a single rows_affected cell. An empty script is a no-op
// and returns nil.
//
// Scripts use ? placeholders; Run rebinds them to the pool's convention.
func Run(ctx context.Context, pool *sqlx.DB, script string,
	params []interface{}) (value.Value, error) {

	if strings.TrimSpace(script) == "" {
		return nil, nil
	}

	if ReturnsRows(script) {
		return queryRows(ctx, pool, script, params)
	}
	return execStatement(ctx, pool, script, params)
}

// RunScript acquires the pool for the db specifier, binds input as the
// statement parameters, and runs script.
func (e *Engine) RunScript(ctx context.Context, db, script string,
	input value.Value) (value.Value, error) {

	if strings.TrimSpace(script) == "" {
		return nil, nil
	}

	pool, err := e.Acquire(ctx, db)
	if err != nil {
		return nil, err
	}
	return Run(ctx, pool, script, BindParams(input))
}

func queryRows(ctx context.Context, pool *sqlx.DB, script string,
	params []interface{}) (value.Value, error) {

	rows, err := pool.QueryxContext(ctx, pool.Rebind(script), params...)
	if err != nil {
		return nil, &IOError{What: "executing query", Err: err}
	}
	defer rows.Close()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, &IOError{What: "reading column types", Err: err}
	}

	tableRows := value.ArrayValue{}
	for rows.Next() {
		raw := make([]interface{}, len(colTypes))
		ptrs := make([]interface{}, len(colTypes))
		for idx := range raw {
			ptrs[idx] = &raw[idx]
		}
		err = rows.Scan(ptrs...)
		if err != nil {
			return nil, &IOError{What: "fetching row", Err: err}
		}

		row := make(value.ArrayValue, 0, len(colTypes))
		for idx, ct := range colTypes {
			row = append(row, decodeCell(ct.DatabaseTypeName(), raw[idx]))
		}
		tableRows = append(tableRows, row)
	}
	err = rows.Err()
	if err != nil {
		return nil, &IOError{What: "fetching rows", Err: err}
	}

	// Headers come from the first row's columns; a result with no rows has
	// no headers.
	headers := value.ArrayValue{}
	if len(tableRows) > 0 {
		for _, ct := range colTypes {
			headers = append(headers, value.StringValue(ct.Name()))
		}
	}

	return value.ObjectValue{
		"headers": headers,
		"rows":    tableRows,
	}, nil
}

func execStatement(ctx context.Context, pool *sqlx.DB, script string,
	params []interface{}) (value.Value, error) {

	res, err := pool.ExecContext(ctx, pool.Rebind(script), params...)
	if err != nil {
		return nil, &IOError{What: "executing statement", Err: err}
	}

	cnt, err := res.RowsAffected()
	if err != nil {
		return nil, &IOError{What: "rows affected", Err: err}
	}

	return value.ObjectValue{
		"headers": value.ArrayValue{value.StringValue("rows_affected")},
		"rows":    value.ArrayValue{value.ArrayValue{value.Int64Value(cnt)}},
	}, nil
}
