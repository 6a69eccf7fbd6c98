package registry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"shnippet/internal/catalog"
	"shnippet/internal/logger"

	"github.com/fatih/color"
)

// Exit codes shared by both binaries. Failed shnippets propagate their own status.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Actions are the collaborators that carry out a resolved invocation.
type Actions interface {
	List(ctx context.Context, cat catalog.Catalog) error
	New(ctx context.Context, cat catalog.Catalog) error
	Edit(ctx context.Context, cat catalog.Catalog, name string) error
	Delete(ctx context.Context, cat catalog.Catalog, name string) error
	Exec(ctx context.Context, name string, args []string) error
}

// ExitCoder is implemented by collaborator errors that carry a process exit
// status to propagate verbatim.
type ExitCoder interface {
	ExitCode() int
}

var errorColor = color.New(color.FgRed)

// ReportUnresolved prints the fixed diagnostic for an unknown or missing subcommand.
func ReportUnresolved(stderr io.Writer) {
	errorColor.Fprintln(stderr, "Unknown subcommand, try -h for help.")
	fmt.Fprintln(stderr, "Exiting...")
}

// Dispatch routes outcome to the matching collaborator and returns the
// process exit code.
func Dispatch(ctx context.Context, outcome Outcome, cat catalog.Catalog, actions Actions, stderr io.Writer) int {
	var err error
	switch outcome.Kind {
	case ListRequested:
		err = actions.List(ctx, cat)
	case NewRequested:
		err = actions.New(ctx, cat)
	case VerbOnSnippet:
		switch outcome.Verb {
		case VerbDelete:
			err = actions.Delete(ctx, cat, outcome.Name)
		case VerbEdit:
			err = actions.Edit(ctx, cat, outcome.Name)
		case VerbExec:
			err = actions.Exec(ctx, outcome.Name, outcome.Args)
		default:
			err = fmt.Errorf("internal error: unknown verb '%s'", outcome.Verb)
		}
	default:
		logger.Debug("Unresolved invocation", "path", outcome.Path, "reason", outcome.Reason)
		ReportUnresolved(stderr)
		return ExitFailure
	}

	if err == nil {
		return ExitOK
	}
	return exitCodeFor(err, outcome, stderr)
}

func exitCodeFor(err error, outcome Outcome, stderr io.Writer) int {
	logger.Error("Action failed", "action", outcome.Kind.String(), "verb", string(outcome.Verb), "name", outcome.Name, "error", err)

	var coder ExitCoder
	if errors.As(err, &coder) && coder.ExitCode() > 0 {
		// The child already reported on its own streams.
		return coder.ExitCode()
	}
	errorColor.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}
