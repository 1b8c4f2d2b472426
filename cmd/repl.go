package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/leftmike/sqlrun/engine"
	"github.com/leftmike/sqlrun/repl"
)

var (
	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive console session",
		RunE:  replRun,
	}
)

func init() {
	sqlrunCmd.AddCommand(replCmd)
}

func replRun(cmd *cobra.Command, args []string) error {
	e := engine.NewEngine()
	defer e.Close()

	repl.Interact(context.Background(), e, resolveDB(database), os.Stdout)
	return nil
}
