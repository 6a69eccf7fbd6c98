// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the new-shnippet form.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings used by the form.
type KeyMap struct {
	Next   key.Binding // Move to the next field
	Prev   key.Binding // Move to the previous field
	Submit key.Binding // Confirm the current field / the form
	Cancel key.Binding // Abort without creating anything
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// ShortHelp lists the bindings shown in the form footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}
