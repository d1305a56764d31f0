package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Choose key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// choiceFrom returns the menu number a key press selects.
func (k keyMap) choiceFrom(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, k.Choose) {
		return 0, false
	}
	n, err := strconv.Atoi(msg.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
