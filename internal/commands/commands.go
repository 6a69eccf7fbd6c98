// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package commands implements the actions the registry dispatches to: listing,
// creating, editing, deleting and executing shnippets.
package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"shnippet/internal/catalog"
	"shnippet/internal/config"
	"shnippet/internal/logger"
	"shnippet/internal/runner"
	"shnippet/internal/ui"

	"github.com/fatih/color"
)

var (
	statusColor     = color.New(color.FgCyan)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// Commands wires the store to the editor, form and runner. The function
// fields default to the real implementations and can be swapped in tests.
type Commands struct {
	Store   *catalog.Store
	Config  config.Config
	Streams runner.Streams

	Prompt func(validate ui.NameValidator) (ui.Result, error)
	Editor func(ctx context.Context, path string) error
	Script func(ctx context.Context, path string, args []string) error
}

// New returns Commands bound to the process's terminal.
func New(store *catalog.Store, cfg config.Config) *Commands {
	c := &Commands{Store: store, Config: cfg, Streams: runner.StdStreams()}
	c.Prompt = func(validate ui.NameValidator) (ui.Result, error) {
		// The form draws on stderr so stdout stays clean for pipes.
		return ui.PromptSnippet(validate, os.Stdin, os.Stderr)
	}
	c.Editor = func(ctx context.Context, path string) error {
		return runner.RunEditor(ctx, c.Config.EditorCommand(), path, c.Streams)
	}
	c.Script = func(ctx context.Context, path string, args []string) error {
		return runner.RunScript(ctx, c.Config.ShellPath(), path, args, c.Streams)
	}
	return c
}

// List prints every shnippet with its description. An empty catalog is not an error.
func (c *Commands) List(_ context.Context, cat catalog.Catalog) error {
	out := c.Streams.Stdout
	entries := cat.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No shnippets found. Create one with 'shnippet new'.")
		return nil
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		padding := strings.Repeat(" ", width-len(e.Name))
		if e.Description == "" {
			fmt.Fprintf(out, "%s%s  %s\n", identifierColor.Sprint(e.Name), padding, dimColor.Sprint("(no description)"))
			continue
		}
		fmt.Fprintf(out, "%s%s  %s\n", identifierColor.Sprint(e.Name), padding, e.Description)
	}
	return nil
}

// newScriptTemplate is the initial editor content for a new shnippet.
func newScriptTemplate(res ui.Result) []byte {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	if res.Description != "" {
		fmt.Fprintf(&b, "# %s\n", res.Description)
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// New asks for a name and description, opens the editor and stores the result.
func (c *Commands) New(ctx context.Context, cat catalog.Catalog) error {
	res, err := c.Prompt(func(name string) error {
		if err := catalog.ValidateName(name); err != nil {
			return err
		}
		if _, exists := cat.Lookup(name); exists {
			return fmt.Errorf("%w: %s", catalog.ErrExists, name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	seed := newScriptTemplate(res)
	content, err := c.editTemp(ctx, res.Name, seed)
	if err != nil {
		return err
	}
	if trimmed := bytes.TrimSpace(content); len(trimmed) == 0 || bytes.Equal(trimmed, bytes.TrimSpace(seed)) {
		return fmt.Errorf("%w: shnippet '%s' is empty, nothing saved", ui.ErrAborted, res.Name)
	}

	entry := catalog.Entry{Name: res.Name, Description: res.Description}
	if err := c.Store.Create(entry, content); err != nil {
		return fmt.Errorf("failed to save shnippet '%s': %w", res.Name, err)
	}
	successColor.Fprintf(c.Streams.Stdout, "Created shnippet '%s'.\n", res.Name)
	return nil
}

// Edit opens the named shnippet in the editor and saves it if it changed.
func (c *Commands) Edit(ctx context.Context, cat catalog.Catalog, name string) error {
	entry, ok := cat.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, name)
	}
	current, err := c.Store.Content(name)
	if err != nil {
		return err
	}

	edited, err := c.editTemp(ctx, name, current)
	if err != nil {
		return err
	}
	if bytes.Equal(current, edited) {
		statusColor.Fprintf(c.Streams.Stdout, "No changes to '%s'.\n", name)
		return nil
	}

	if err := c.Store.Update(entry, edited); err != nil {
		return fmt.Errorf("failed to save shnippet '%s': %w", name, err)
	}
	successColor.Fprintf(c.Streams.Stdout, "Saved shnippet '%s'.\n", name)
	return nil
}

// Delete removes the named shnippet.
func (c *Commands) Delete(_ context.Context, cat catalog.Catalog, name string) error {
	if _, ok := cat.Lookup(name); !ok {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, name)
	}
	if err := c.Store.Remove(name); err != nil {
		return fmt.Errorf("failed to delete shnippet '%s': %w", name, err)
	}
	successColor.Fprintf(c.Streams.Stdout, "Deleted shnippet '%s'.\n", name)
	return nil
}

// Exec runs the named shnippet. The content is looked up by name at call
// time, so no catalog is needed.
func (c *Commands) Exec(ctx context.Context, name string, args []string) error {
	path, err := c.Store.ScriptPath(name)
	if err != nil {
		return err
	}
	logger.Info("Executing shnippet", "name", name, "args", len(args))
	return c.Script(ctx, path, args)
}

// editTemp writes initial to a temporary file, runs the editor on it and
// returns the edited content.
func (c *Commands) editTemp(ctx context.Context, name string, initial []byte) ([]byte, error) {
	f, err := os.CreateTemp("", "shnippet-"+name+"-*.sh")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(initial); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := c.Editor(ctx, path); err != nil {
		// %v keeps the editor's exit status out of the process exit code.
		return nil, fmt.Errorf("editor failed, nothing saved: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return content, nil
}
