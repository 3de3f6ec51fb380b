package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "supdef",
	Short:   "SupDef source-level macro preprocessor",
	Long:    `SupDef augments C/C++ source files with define and runnable macros declared via #pragma supdef directives.`,
	Version: version,
}

// Execute runs the root command, exiting 1 on any unrecoverable error per
// spec.md §6's "Exit code 0 on success; 1 on any unrecoverable error."
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(expandCmd)
	rootCmd.SetVersionTemplate("supdef version {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "v", false, "print version and exit")
}
