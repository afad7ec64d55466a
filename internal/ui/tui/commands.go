package tui

import (
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

const historyPreload = 20

func cmdLoadHistory(store ports.HistoryStore) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.Recent(historyPreload)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func cmdAppendHistory(store ports.HistoryStore, input string, res domain.ConversionResult) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return historyAppendedMsg{input: input, err: store.Append(input, res)}
	}
}
