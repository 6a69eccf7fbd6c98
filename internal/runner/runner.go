// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package runner spawns the external processes shnippet hands control to:
// the shell that executes a shnippet and the user's text editor. Both block
// until the child exits and inherit the terminal's standard streams.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"shnippet/internal/util"
)

// ExitError reports a child process that exited with a non-zero status.
type ExitError struct {
	Desc string
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Desc, e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the child's exit status.
func (e *ExitError) ExitCode() int { return e.Code }

// Streams are the standard streams handed to a child process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdStreams returns the process's own standard streams.
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (s Streams) attach(cmd *exec.Cmd) {
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
}

// RunScript executes the script at path with the given shell, forwarding args
// as positional parameters.
func RunScript(ctx context.Context, shell, path string, args []string, streams Streams) error {
	cmd := exec.CommandContext(ctx, shell, append([]string{path}, args...)...)
	streams.attach(cmd)
	return runLocalCommand(cmd, fmt.Sprintf("shnippet %s", path))
}

// RunEditor opens path in editor and waits for it to exit. The editor value is
// interpreted by /bin/sh so that settings like "code --wait" work.
func RunEditor(ctx context.Context, editor, path string, streams Streams) error {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", util.ShellCommandLine(editor, path))
	streams.attach(cmd)
	return runLocalCommand(cmd, fmt.Sprintf("editor '%s'", editor))
}
