package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leftmike/sqlrun/engine"
	"github.com/leftmike/sqlrun/render"
	"github.com/leftmike/sqlrun/repl"
	"github.com/leftmike/sqlrun/value"
)

var (
	runCmd = &cobra.Command{
		Use:   "run [sql-file ...]",
		Short: "Execute SQL scripts and print the results",
		RunE:  runRun,
	}

	sqlArgs    = []string{}
	paramArgs  = []string{}
	htmlOutput = false
)

func init() {
	fs := runCmd.Flags()

	fs.StringSliceVar(&sqlArgs, "sql", sqlArgs, "sql `script` to execute; multiple allowed")
	fs.StringSliceVar(&paramArgs, "param", paramArgs,
		"`value` bound as a statement parameter; multiple allowed")
	fs.BoolVar(&htmlOutput, "html", htmlOutput, "render results as HTML table fragments")

	sqlrunCmd.AddCommand(runCmd)
}

// paramValue maps a command line parameter to the most specific value it
// parses as.
func paramValue(s string) value.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.Int64Value(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Float64Value(f)
	}
	if s == value.TrueString || s == value.FalseString {
		return value.BoolValue(s == value.TrueString)
	}
	return value.StringValue(s)
}

func runParams() []interface{} {
	if len(paramArgs) == 0 {
		return nil
	}

	input := make(value.ArrayValue, 0, len(paramArgs))
	for _, arg := range paramArgs {
		input = append(input, paramValue(arg))
	}
	return engine.BindParams(input)
}

func runRun(cmd *cobra.Command, args []string) error {
	scripts := append([]string{}, sqlArgs...)
	for _, arg := range args {
		b, err := os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("sqlrun: sql file: %s", err)
		}
		scripts = append(scripts, string(b))
	}

	e := engine.NewEngine()
	defer e.Close()

	ctx := context.Background()
	pool, err := e.Acquire(ctx, resolveDB(database))
	if err != nil {
		return fmt.Errorf("sqlrun: %s", err)
	}

	params := runParams()
	for _, script := range scripts {
		if strings.TrimSpace(script) == "" {
			continue
		}

		tbl, err := engine.Run(ctx, pool, script, params)
		if err != nil {
			return fmt.Errorf("sqlrun: %s", err)
		}

		if htmlOutput {
			fmt.Fprint(os.Stdout, render.HTML(tbl))
		} else {
			repl.WriteTable(os.Stdout, tbl)
		}
	}
	return nil
}
