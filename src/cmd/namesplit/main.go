package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"namesplit/src/cmd/namesplit/batchcmd"
	"namesplit/src/cmd/namesplit/cmdutil"
	"namesplit/src/cmd/namesplit/composecmd"
	"namesplit/src/cmd/namesplit/splitcmd"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "namesplit",
		Short:         "Split personal names into honorific, first name and last name",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(cmdutil.FlagConfig, "", "Config file (default $NAMESPLIT_CONFIG)")
	root.PersistentFlags().String(cmdutil.FlagLogLevel, "", "Log level: debug, info, warn, error")
	// Attach subcommands
	root.AddCommand(splitcmd.New())
	root.AddCommand(composecmd.New())
	root.AddCommand(batchcmd.New())
	return root
}

func execute() error {
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
