// Package appshell is the process boundary: signals in, exit status out.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitInterrupted is the status of a run stopped by SIGINT or SIGTERM.
const ExitInterrupted = 130

// Main runs run under a context cancelled by SIGINT/SIGTERM and exits with
// its status.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(Run(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Run is Main without the process exit.
func Run(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	// A signal wins over whatever status the interrupted run reported.
	if ctx.Err() != nil {
		code = ExitInterrupted
	}
	return code
}
