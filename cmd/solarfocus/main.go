// Command solarfocus estimates residential solar installations.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rshade/solarfocus/internal/cli"
	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/pkg/version"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

// exitCode maps an error to the process exit status. Rejected household
// input exits with 2 so scripts can tell bad data from failures.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, engine.ErrInvalidInput), errors.Is(err, engine.ErrUnknownUnit):
		return exitInvalidInput
	default:
		return exitFailure
	}
}
