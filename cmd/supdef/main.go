// Command supdef is the SupDef source-level macro preprocessor CLI.
package main

import (
	"github.com/keurnel/supdef/cmd/cli/cmd"
	"github.com/keurnel/supdef/internal/supdeflog"
)

func main() {
	defer supdeflog.Flush()
	cmd.Execute()
}
