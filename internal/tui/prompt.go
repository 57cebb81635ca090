// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

// Package tui implements the interactive SMS code prompt shown during login
// completion.
//
// The prompt is only used in pretty output mode. In JSON mode stdout must
// stay pipeable, so the code is read from stdin without any prompt (see
// [StdinPrompter]).
package tui

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptAborted is returned when the user cancels the SMS code prompt.
var ErrPromptAborted = errors.New("sms code prompt aborted")

// smsPromptModel is the Bubble Tea model for the SMS code prompt. It renders
// a single text input; enter submits a non-empty code, esc or ctrl+c aborts.
type smsPromptModel struct {
	field   textinput.Model
	errMsg  string
	done    bool
	aborted bool
}

func newSMSPromptModel() smsPromptModel {
	field := textinput.New()
	field.Placeholder = "123456"
	field.CharLimit = 10
	field.Width = 12
	field.Focus()

	return smsPromptModel{field: field}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m smsPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - enter  — submits the code if the field is non-empty.
//   - esc    — aborts the prompt.
//   - ctrl+c — aborts the prompt.
//
// All other key events are forwarded to the input widget.
func (m smsPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if strings.TrimSpace(m.field.Value()) == "" {
				m.errMsg = "SMS code must not be empty"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m smsPromptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Enter SMS code"))
	b.WriteString("\n\n")
	b.WriteString(m.field.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter submit • esc cancel"))
	return promptStyle.Render(b.String())
}

// SMSPrompter supplies the SMS code via an interactive Bubble Tea prompt.
type SMSPrompter struct{}

// PromptCode runs the prompt until the user submits a code or aborts.
func (SMSPrompter) PromptCode(ctx context.Context) (string, error) {
	finalModel, err := tea.NewProgram(newSMSPromptModel(), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(smsPromptModel)
	if !ok || result.aborted {
		return "", ErrPromptAborted
	}

	return strings.TrimSpace(result.field.Value()), nil
}

// StdinPrompter reads the SMS code as the first line of its reader without
// printing a prompt, keeping stdout clean for piped JSON output.
type StdinPrompter struct {
	Reader io.Reader
}

// PromptCode reads one line and trims surrounding whitespace.
func (p StdinPrompter) PromptCode(ctx context.Context) (string, error) {
	scanner := bufio.NewScanner(p.Reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}
