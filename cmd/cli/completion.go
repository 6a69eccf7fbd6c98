// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"shnippet/internal/logger"
	"shnippet/internal/registry"

	"github.com/spf13/cobra"
)

// Shell identifies a shell that completion scripts can be generated for.
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	PowerShell Shell = "powershell"
)

var supportedShells = []Shell{Bash, Zsh, Fish, PowerShell}

func shellNames() []string {
	names := make([]string, 0, len(supportedShells))
	for _, sh := range supportedShells {
		names = append(names, string(sh))
	}
	return names
}

// ParseShell validates and returns a Shell from a user-provided string.
func ParseShell(s string) (Shell, error) {
	sh := Shell(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range supportedShells {
		if sh == known {
			return sh, nil
		}
	}
	return "", fmt.Errorf("shell %q is not supported (supported: %s)", s, strings.Join(shellNames(), ", "))
}

// newCobraTree mirrors the registry tree as cobra commands. Cobra renders help
// and completion scripts and answers the __complete requests those scripts
// make; resolution and dispatch stay with the registry.
func newCobraTree(t *registry.Tree) *cobra.Command {
	root := cobraCommand(t.Root)
	root.Version = version
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.CompletionOptions.DisableDefaultCmd = true

	root.Flags().String(registry.CompletionsFlag, "", "Generate shell completions ("+strings.Join(shellNames(), ", ")+")")
	_ = root.RegisterFlagCompletionFunc(registry.CompletionsFlag, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return shellNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return root
}

func cobraCommand(n *registry.Node) *cobra.Command {
	c := &cobra.Command{
		Use:                   n.Name,
		Short:                 n.Help,
		DisableFlagsInUseLine: true,
		// Never invoked for real work; a Run func keeps every node listed in help.
		Run: func(*cobra.Command, []string) {},
	}

	switch {
	case n.Kind == registry.KindSnippet && n.Verb == registry.VerbExec:
		c.Use = n.Name + " [args...]"
		c.Args = cobra.ArbitraryArgs
	case n.IsLeaf():
		c.Args = cobra.NoArgs
		c.ValidArgsFunction = cobra.NoFileCompletions
	default:
		c.ValidArgsFunction = cobra.NoFileCompletions
	}

	for _, child := range n.Children {
		c.AddCommand(cobraCommand(child))
	}
	return c
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// runCompletionRequest answers a dynamic completion query from a generated script.
func runCompletionRequest(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error("Completion request failed", "args", args, "error", err)
		return registry.ExitFailure
	}
	return registry.ExitOK
}

// writeCompletions prints the completion script for shellName.
func writeCompletions(root *cobra.Command, shellName string, stdout, stderr io.Writer) int {
	sh, err := ParseShell(shellName)
	if err != nil {
		errorColor.Fprintf(stderr, "Error reading shell name '%s': %v\n", shellName, err)
		return registry.ExitFailure
	}

	switch sh {
	case Bash:
		err = root.GenBashCompletionV2(stdout, true)
	case Zsh:
		err = root.GenZshCompletion(stdout)
	case Fish:
		err = root.GenFishCompletion(stdout, true)
	case PowerShell:
		err = root.GenPowerShellCompletionWithDesc(stdout)
	}
	if err != nil {
		errorColor.Fprintf(stderr, "Error generating %s completions: %v\n", sh, err)
		return registry.ExitFailure
	}
	return registry.ExitOK
}

// printHelp prints the help of the command at path, or of the deepest
// existing ancestor.
func printHelp(root *cobra.Command, path []string, w io.Writer) {
	c := root
	for _, name := range path {
		var next *cobra.Command
		for _, sub := range c.Commands() {
			if sub.Name() == name {
				next = sub
				break
			}
		}
		if next == nil {
			break
		}
		c = next
	}
	c.SetOut(w)
	_ = c.Help()
}
