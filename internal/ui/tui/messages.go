package tui

import "github.com/aalvaropc/unitconv/internal/domain"

type historyLoadedMsg struct {
	entries []domain.HistoryEntry
	err     error
}

type historyAppendedMsg struct {
	input string
	err   error
}
