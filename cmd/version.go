package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	MajorVersion = 0
	MinorVersion = 1
)

func init() {
	sqlrunCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number of sqlrun",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("sqlrun %d.%d on %s %s, compiled by %s\n", MajorVersion,
					MinorVersion, runtime.GOARCH, runtime.GOOS, runtime.Version())
			},
		})
}
