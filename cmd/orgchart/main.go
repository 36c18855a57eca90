package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/internal/cli"
	orgerrors "github.com/matzehuels/orgchart/pkg/errors"
)

func main() {
	// ORGCHART_* settings may live in a .env next to the roster.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// exitCode maps errors to process exit codes: 130 for an interrupt, 2 for
// bad input or configuration, 3 for a denied capability, 1 otherwise.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	switch orgerrors.GetCode(err) {
	case orgerrors.ErrCodeForbidden:
		return 3
	case orgerrors.ErrCodeInvalidInput, orgerrors.ErrCodeInvalidConfig, orgerrors.ErrCodeInvalidFormat,
		orgerrors.ErrCodeInvalidRole, orgerrors.ErrCodeInvalidPolicy, orgerrors.ErrCodeInvalidPath,
		orgerrors.ErrCodeFileNotFound:
		return 2
	}
	return 1
}
