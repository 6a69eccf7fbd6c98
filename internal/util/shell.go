// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import "strings"

// QuoteArgForShell quotes an argument for safe use in a POSIX shell command.
// It uses single quotes and escapes any internal single quotes.
func QuoteArgForShell(arg string) string {
	if arg == "" {
		return "''"
	}
	return `'` + strings.ReplaceAll(arg, "'", `'\''`) + `'`
}

// ShellCommandLine appends quoted args to a command that is itself shell
// syntax, e.g. an $EDITOR value such as "code --wait".
func ShellCommandLine(command string, args ...string) string {
	var b strings.Builder
	b.WriteString(command)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(QuoteArgForShell(a))
	}
	return b.String()
}
