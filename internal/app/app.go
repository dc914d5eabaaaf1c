// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ringron/internal/cli"
	"ringron/internal/engine"
	"ringron/internal/method"
	"ringron/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitRuntime     = 1
	ExitUsage       = 2 // bad flags, arguments or input files
	ExitWrite       = 3 // stdout could not be flushed
	ExitInterrupted = 130
)

// ErrUnknownMethod is returned when no catalog method has the given name.
var ErrUnknownMethod = errors.New("unknown method")

// RunContext runs one ringron invocation and returns its exit status.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := newRootCmd(outw, stderr)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	code := exitCode(parent, err)
	if err != nil && code != ExitInterrupted {
		_, _ = fmt.Fprintf(stderr, "ringron: %v\n", err)
		if code == ExitUsage && cli.IsUsage(err) {
			_, _ = fmt.Fprintln(stderr, "Run 'ringron --help' for usage.")
		}
	}

	if e := writers.IgnoreBrokenPipe(outw.Flush()); e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		if code == ExitOK {
			code = ExitWrite
		}
	}
	return code
}

func exitCode(ctx context.Context, err error) int {
	var (
		pe *method.ParseError
		ce *engine.PreconditionError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return ExitInterrupted
	case cli.IsUsage(err),
		errors.As(err, &pe),
		errors.As(err, &ce),
		errors.Is(err, engine.ErrUnknownLead),
		errors.Is(err, ErrUnknownMethod),
		isCobraUsage(err):
		return ExitUsage
	default:
		return ExitRuntime
	}
}

// cobra reports unknown subcommands as a plain error.
func isCobraUsage(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command")
}
