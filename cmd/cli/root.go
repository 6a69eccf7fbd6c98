// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"shnippet/internal/catalog"
	"shnippet/internal/commands"
	"shnippet/internal/config"
	"shnippet/internal/logger"
	"shnippet/internal/registry"
	"shnippet/internal/runner"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// debugEnv mirrors log records to stderr when set to 1.
const debugEnv = "SHNIPPET_DEBUG"

// version is overridden at build time with -ldflags "-X shnippet/cmd/cli.version=..."
var version = "0.1.0"

var errorColor = color.New(color.FgRed)

// Program describes one of the binaries built on the registry.
type Program struct {
	Name  string
	About string
	Mode  registry.Mode
}

var (
	// Primary exposes list, new and the per-verb shnippet commands.
	Primary = Program{Name: "shnippet", About: "Commandline snippet manager", Mode: registry.ModePrimary}

	// Direct exposes every shnippet as a top-level command that executes it.
	Direct = Program{Name: "shnippet-exec", About: "Commandline snippet manager", Mode: registry.ModeFlat}
)

func (p Program) buildTree(cat catalog.Catalog) *registry.Tree {
	if p.Mode == registry.ModeFlat {
		return registry.BuildFlat(p.Name, p.About, cat)
	}
	return registry.BuildPrimary(p.Name, p.About, cat, registry.DefaultVerbs())
}

// RunCLI runs p with the process arguments and exits with its status.
func RunCLI(p Program) {
	os.Exit(Run(context.Background(), p, os.Args[1:], os.Stdout, os.Stderr))
}

type rootFlags struct {
	set         *pflag.FlagSet
	completions string
	help        bool
	version     bool
}

func newRootFlags(name string) *rootFlags {
	f := &rootFlags{set: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	// Flags after the first command token belong to that command or the shnippet.
	f.set.SetInterspersed(false)
	f.set.SetOutput(io.Discard)
	f.set.StringVar(&f.completions, registry.CompletionsFlag, "", "Generate shell completions")
	f.set.BoolVarP(&f.help, "help", "h", false, "Print help")
	f.set.BoolVarP(&f.version, "version", "V", false, "Print version")
	return f
}

// Run executes one invocation and returns the exit code.
func Run(ctx context.Context, p Program, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		errorColor.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return registry.ExitFailure
	}
	logger.Init(cfg.LogLevel, os.Getenv(debugEnv) == "1")

	dir, err := cfg.SnippetDirectory()
	if err != nil {
		errorColor.Fprintf(stderr, "Error locating shnippet directory: %v\n", err)
		return registry.ExitFailure
	}
	store := catalog.NewStore(dir)
	cat, err := store.Load()
	if err != nil {
		logger.Error("Failed to load catalog", "dir", dir, "error", err)
		errorColor.Fprintf(stderr, "Error loading shnippets: %v\n", err)
		return registry.ExitFailure
	}

	tree := p.buildTree(cat)
	root := newCobraTree(tree)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if len(args) > 0 && isCompletionRequest(args[0]) {
		return runCompletionRequest(ctx, root, args)
	}

	flags := newRootFlags(p.Name)
	if err := flags.set.Parse(args); err != nil {
		errorColor.Fprintf(stderr, "Error: %v\n", err)
		registry.ReportUnresolved(stderr)
		return registry.ExitFailure
	}

	switch {
	case flags.set.Changed(registry.CompletionsFlag):
		return writeCompletions(root, flags.completions, stdout, stderr)
	case flags.version:
		fmt.Fprintf(stdout, "%s %s\n", p.Name, version)
		return registry.ExitOK
	case flags.help:
		printHelp(root, nil, stdout)
		return registry.ExitOK
	}

	rest := flags.set.Args()
	if path, ok := helpRequest(tree, rest); ok {
		printHelp(root, path, stdout)
		return registry.ExitOK
	}
	if len(rest) > 0 && rest[0] == helpCommand {
		return runHelpCommand(tree, root, rest[1:], stdout, stderr)
	}

	outcome := registry.Resolve(tree, rest)
	if outcome.Kind == registry.Unresolved {
		printHelp(root, outcome.Path, stderr)
	}

	cmds := commands.New(store, cfg)
	cmds.Streams = runner.Streams{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}
	return registry.Dispatch(ctx, outcome, cat, cmds, stderr)
}

func isHelpFlag(tok string) bool {
	return tok == "-h" || tok == "--help"
}

// helpRequest reports the command path whose help was asked for with -h or
// --help after one or more command tokens. A help flag after an executed
// shnippet belongs to the shnippet.
func helpRequest(t *registry.Tree, argv []string) ([]string, bool) {
	i := slices.IndexFunc(argv, isHelpFlag)
	if i < 0 {
		return nil, false
	}
	node, path := t.Descend(argv[:i])
	if len(path) != i {
		return nil, false
	}
	if node.Kind == registry.KindSnippet && node.Verb == registry.VerbExec {
		return nil, false
	}
	return path, true
}

const helpCommand = "help"

// runHelpCommand handles `help [command...]`.
func runHelpCommand(t *registry.Tree, root *cobra.Command, argv []string, stdout, stderr io.Writer) int {
	_, path := t.Descend(argv)
	if len(path) != len(argv) {
		printHelp(root, path, stderr)
		registry.ReportUnresolved(stderr)
		return registry.ExitFailure
	}
	printHelp(root, path, stdout)
	return registry.ExitOK
}
