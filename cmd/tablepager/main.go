// Command tablepager paginates HTML tables and pages through tabular data in
// the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/tablepager/internal/cli"
	"github.com/rshade/tablepager/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// newRootCmd builds the CLI with the full build description for --version.
func newRootCmd() *cobra.Command {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetVersionTemplate("tablepager " + version.Info() + "\n")
	return root
}

// run executes the CLI and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
