// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"enigma/internal/cli"
)

// RunContext executes the CLI against explicit streams and returns the
// process exit code: 0 on success, 2 on configuration or usage errors.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "enigma: %v\n", err)
		return 2
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
