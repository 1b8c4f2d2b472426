package engine_test

import (
	"testing"

	"github.com/leftmike/sqlrun/engine"
)

func TestReturnsRows(t *testing.T) {
	cases := []struct {
		script string
		rows   bool
	}{
		{"SELECT 1", true},
		{"  -- comment\nSELECT 1", true},
		{"select * from t", true},
		{"WITH x AS (SELECT 1) SELECT * FROM x", true},
		{"pragma table_info(t)", true},
		{"SHOW TABLES", true},
		{"describe t", true},
		{"EXPLAIN SELECT 1", true},
		{"/* c */ insert into t values (1)", false},
		{"/* a */ /* b */ select 1", true},
		{"-- c\n-- d\nshow tables", true},
		{"insert into t values (1)", false},
		{"update t set a = 1", false},
		{"delete from t", false},
		{"create table t (a INT)", false},
		{"", false},
		{"   \n\t  ", false},
		{"-- only a comment\n", false},
		{"-- comment without newline", false},
		{"/* unterminated select 1", false},
		{"selection is not select", false},
	}

	for _, c := range cases {
		rows := engine.ReturnsRows(c.script)
		if rows != c.rows {
			t.Errorf("ReturnsRows(%q) got %t want %t", c.script, rows, c.rows)
		}
	}
}
