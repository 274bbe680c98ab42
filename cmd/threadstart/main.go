// Command threadstart exercises the launcher from the command line: it spawns
// a batch of detached threads and reports how they finished.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "threadstart",
		Short:         "Spawn detached OS threads running a callback once",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "config URL (yaml), any afs supported scheme")
	rootCmd.AddCommand(newRunCmd())
	return rootCmd
}
