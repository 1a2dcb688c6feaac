// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: t})
}

func TestConfirmModelKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		opts          ConfirmOptions
		msgs          []tea.Msg
		wantDone      bool
		wantCancelled bool
		wantResult    bool
	}{
		{
			name:       "y accepts",
			msgs:       []tea.Msg{keyRune('y')},
			wantDone:   true,
			wantResult: true,
		},
		{
			name:       "n declines",
			opts:       ConfirmOptions{Default: true},
			msgs:       []tea.Msg{keyRune('n')},
			wantDone:   true,
			wantResult: false,
		},
		{
			name:       "enter submits default",
			opts:       ConfirmOptions{Default: false},
			msgs:       []tea.Msg{keyType(tea.KeyEnter)},
			wantDone:   true,
			wantResult: false,
		},
		{
			name:       "tab toggles then enter",
			opts:       ConfirmOptions{Default: false},
			msgs:       []tea.Msg{keyType(tea.KeyTab), keyType(tea.KeyEnter)},
			wantDone:   true,
			wantResult: true,
		},
		{
			name:       "left selects yes",
			opts:       ConfirmOptions{Default: false},
			msgs:       []tea.Msg{keyType(tea.KeyLeft), keyType(tea.KeyEnter)},
			wantDone:   true,
			wantResult: true,
		},
		{
			name:          "esc cancels",
			msgs:          []tea.Msg{keyType(tea.KeyEsc)},
			wantDone:      true,
			wantCancelled: true,
		},
		{
			name:          "ctrl+c cancels",
			msgs:          []tea.Msg{keyType(tea.KeyCtrlC)},
			wantDone:      true,
			wantCancelled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var model tea.Model = newConfirmModel(tt.opts)
			for _, msg := range tt.msgs {
				model, _ = model.Update(msg)
			}

			m := model.(*confirmModel)
			if m.done != tt.wantDone {
				t.Errorf("done = %v, want %v", m.done, tt.wantDone)
			}
			if m.cancelled != tt.wantCancelled {
				t.Errorf("cancelled = %v, want %v", m.cancelled, tt.wantCancelled)
			}
			if !tt.wantCancelled && m.result != tt.wantResult {
				t.Errorf("result = %v, want %v", m.result, tt.wantResult)
			}
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	t.Parallel()

	m := newConfirmModel(ConfirmOptions{
		Title:       "Install the system GUI toolkit?",
		Description: "Requires sudo.",
	})

	view := m.View()
	for _, want := range []string{"Install the system GUI toolkit?", "Requires sudo.", "Yes", "No"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m.done = true
	if m.View() != "" {
		t.Error("View() should be empty once the prompt is done")
	}
}
