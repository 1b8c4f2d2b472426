package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/leftmike/sqlrun/engine"
)

const (
	sqlrunHistory = ".sqlrun_history"
)

type lineReader struct {
	line *liner.State
	r    *strings.Reader
}

func (lr *lineReader) ReadRune() (r rune, size int, err error) {
	for {
		if lr.r == nil {
			s, err := lr.line.Prompt("sqlrun: ")
			if err != nil {
				return 0, 0, err
			}
			lr.line.AppendHistory(s)
			lr.r = strings.NewReader(s + "\n")
		}

		r, sz, err := lr.r.ReadRune()
		if err == io.EOF {
			lr.r = nil
		} else if err != nil {
			return 0, 0, err
		} else {
			return r, sz, nil
		}
	}
}

// Interact runs an interactive console session against the db specifier.
func Interact(ctx context.Context, e *engine.Engine, db string, w io.Writer) {
	line := liner.NewLiner()
	defer line.Close()

	if f, err := os.Open(sqlrunHistory); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	ReplSQL(ctx, e, db, &lineReader{line: line}, w)

	if f, err := os.Create(sqlrunHistory); err != nil {
		fmt.Fprintf(os.Stderr, "sqlrun: error writing history file, %s: %s", sqlrunHistory,
			err)
	} else {
		line.WriteHistory(f)
		f.Close()
	}
}
