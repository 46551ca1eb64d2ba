package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	AppName      = "codetime-api"
	AppBuildTime = "dev"
	AppCommit    = "dev"
	AppRelease   = "dev"
)

func main() {
	root := &cobra.Command{
		Use:           AppName,
		Short:         "Builds code-time charts from WakaTime summaries",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", AppRelease, AppCommit, AppBuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newAggregateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
