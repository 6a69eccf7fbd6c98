// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"shnippet/internal/logger"
)

// runLocalCommand runs cmd to completion and maps a non-zero exit status to
// *ExitError. Standard streams must already be attached by the caller.
func runLocalCommand(cmd *exec.Cmd, cmdDesc string) error {
	logger.Debug("Running command", "desc", cmdDesc, "argv", strings.Join(cmd.Args, " "))

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmdDesc, err)
	}
	cmdErr := cmd.Wait()
	if cmdErr == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(cmdErr, &exitErr) && exitErr.ExitCode() > 0 {
		return &ExitError{Desc: cmdDesc, Code: exitErr.ExitCode(), Err: cmdErr}
	}
	// Killed by a signal or otherwise without a usable status.
	return fmt.Errorf("%s failed: %w", cmdDesc, cmdErr)
}
