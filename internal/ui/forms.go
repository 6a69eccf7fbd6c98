// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui contains the interactive terminal form used by `shnippet new`
// to ask for a name and a description before the editor is opened.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("aborted by user")

const (
	fieldName = iota
	fieldDescription
)

// Result holds the values entered in the form.
type Result struct {
	Name        string
	Description string
}

// NameValidator checks a candidate shnippet name.
type NameValidator func(name string) error

// SnippetForm is the Bubble Tea model of the new-shnippet form.
type SnippetForm struct {
	inputs    []textinput.Model
	focus     int
	validate  NameValidator
	err       error
	keys      KeyMap
	submitted bool
	aborted   bool
}

// NewSnippetForm creates the form with focus on the name field.
func NewSnippetForm(validate NameValidator) SnippetForm {
	inputs := make([]textinput.Model, 2)

	t := textinput.New()
	t.Placeholder = "Name (e.g., build)"
	t.CharLimit = 64
	t.Width = 40
	t.Focus()
	inputs[fieldName] = t

	t = textinput.New()
	t.Placeholder = "Description (optional)"
	t.CharLimit = 200
	t.Width = 60
	inputs[fieldDescription] = t

	f := SnippetForm{inputs: inputs, validate: validate, keys: DefaultKeyMap}
	f.styleInputs()
	return f
}

func (m SnippetForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SnippetForm) styleInputs() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
}

func (m *SnippetForm) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.styleInputs()
	return cmd
}

func (m SnippetForm) name() string {
	return strings.TrimSpace(m.inputs[fieldName].Value())
}

func (m SnippetForm) checkName() error {
	if m.validate == nil {
		return nil
	}
	return m.validate(m.name())
}

func (m SnippetForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)

	case key.Matches(keyMsg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)

	case key.Matches(keyMsg, m.keys.Submit):
		if err := m.checkName(); err != nil {
			m.err = err
			return m, m.setFocus(fieldName)
		}
		m.err = nil
		if m.focus == fieldName {
			return m, m.setFocus(fieldDescription)
		}
		m.submitted = true
		return m, tea.Quit
	}

	m.err = nil
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m SnippetForm) View() string {
	if m.submitted || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New shnippet"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldName].View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldDescription].View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.footer())
	b.WriteString("\n")
	return b.String()
}

func (m SnippetForm) footer() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, footerSeparatorStyle.Render(" | "))
}

// Result returns the submitted values, or ErrAborted if the form was cancelled
// or never submitted.
func (m SnippetForm) Result() (Result, error) {
	if m.aborted || !m.submitted {
		return Result{}, ErrAborted
	}
	return Result{
		Name:        m.name(),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
	}, nil
}

// PromptSnippet runs the form on the given terminal streams and blocks until
// the user submits or cancels it.
func PromptSnippet(validate NameValidator, in io.Reader, out io.Writer) (Result, error) {
	p := tea.NewProgram(NewSnippetForm(validate), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("failed to run form: %w", err)
	}
	form, ok := final.(SnippetForm)
	if !ok {
		return Result{}, fmt.Errorf("unexpected form model %T", final)
	}
	return form.Result()
}
