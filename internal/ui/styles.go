// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Footer / Status Bar Styles
	footerKeyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	footerDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
