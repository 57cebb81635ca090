// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeCode(m smsPromptModel, code string) smsPromptModel {
	for _, r := range code {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(smsPromptModel)
	}
	return m
}

func TestSMSPromptModel_SubmitCode(t *testing.T) {
	m := typeCode(newSMSPromptModel(), "123456")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(smsPromptModel)

	assert.True(t, m.done)
	assert.False(t, m.aborted)
	assert.Equal(t, "123456", m.field.Value())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSMSPromptModel_EmptySubmitShowsError(t *testing.T) {
	m := newSMSPromptModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(smsPromptModel)

	assert.False(t, m.done)
	assert.Nil(t, cmd)
	assert.Equal(t, "SMS code must not be empty", m.errMsg)
	assert.Contains(t, m.View(), "SMS code must not be empty")
}

func TestSMSPromptModel_Abort(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		updated, cmd := newSMSPromptModel().Update(tea.KeyMsg{Type: key})
		m := updated.(smsPromptModel)

		assert.True(t, m.aborted)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestSMSPromptModel_View(t *testing.T) {
	out := newSMSPromptModel().View()

	assert.Contains(t, out, "Enter SMS code")
	assert.Contains(t, out, "enter submit")
	assert.Contains(t, out, "esc cancel")
}

func TestStdinPrompter(t *testing.T) {
	p := StdinPrompter{Reader: strings.NewReader("  123456  \nsecond line\n")}

	code, err := p.PromptCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestStdinPrompter_EOF(t *testing.T) {
	p := StdinPrompter{Reader: strings.NewReader("")}

	_, err := p.PromptCode(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
