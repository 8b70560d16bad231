// Package cli implements the ttytable command: it reads delimited rows from
// stdin and prints them as a table.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string

	// IsTerminal reports whether Stdin is interactive. Nil means detect.
	IsTerminal func() bool
}

// NewApp constructs an App bound to the process streams.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		a.printError(err)
		return err
	}
	return nil
}

// RootCommand returns the root Cobra command without executing it.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}

func (a *App) printError(err error) {
	_, _ = fmt.Fprintf(a.Stderr, "Error: %v\n", err)
	if s := Suggestion(err); s != "" {
		_, _ = fmt.Fprintf(a.Stderr, "%s\n", s)
	}
}

func (a *App) stdinIsTerminal() bool {
	if a.IsTerminal != nil {
		return a.IsTerminal()
	}
	f, ok := a.Stdin.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
