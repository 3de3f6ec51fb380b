package cmd

import (
	"fmt"
	"os"

	"github.com/keurnel/supdef/internal/config"
	"github.com/keurnel/supdef/internal/pipeline"
	"github.com/keurnel/supdef/internal/supdeflog"
	"github.com/spf13/cobra"
)

var (
	flagOutput    string
	flagIncludes  []string
	flagDebug     bool
	flagCC        string
	flagCCCmdline string
)

var expandCmd = &cobra.Command{
	Use:   "expand <input-file>",
	Short: "Expand a SupDef-annotated source file",
	Long:  `Expand reads a C/C++ source file, resolves its #pragma supdef imports, and emits the fully macro-expanded document.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExpand(args[0])
	},
}

func init() {
	expandCmd.Flags().StringVarP(&flagOutput, "output-file", "o", "", "destination file (stdout if omitted)")
	expandCmd.Flags().StringVar(&flagOutput, "output", "", "alias for --output-file")
	expandCmd.Flags().StringArrayVarP(&flagIncludes, "include", "I", nil, "search-path directory for import resolution (repeatable)")
	expandCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "enable verbose tracing")
	expandCmd.Flags().StringVar(&flagCC, "cc", "", "compiler executable (default: vendored toolchain path)")
	expandCmd.Flags().StringVar(&flagCCCmdline, "cc-cmdline", "", "compiler command-line template")
}

func runExpand(inputPath string) error {
	supdeflog.SetDebug(flagDebug)

	cfg, err := config.New(config.Params{
		SearchPaths: flagIncludes,
		CCPath:      flagCC,
		CCCmdline:   flagCCCmdline,
		Debug:       flagDebug,
		OutputPath:  flagOutput,
	}, config.StdinConfirm)
	if err != nil {
		supdeflog.Errorf("configuration error: %v", err)
		return err
	}

	out, err := pipeline.Run(cfg, inputPath)
	if err != nil {
		supdeflog.Errorf("%v", err)
		return err
	}

	if cfg.OutputPath == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(out), 0o644); err != nil {
		err = fmt.Errorf("writing output file %s: %w", cfg.OutputPath, err)
		supdeflog.Errorf("%v", err)
		return err
	}
	return nil
}
