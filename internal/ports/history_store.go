package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// HistoryStore persists evaluated lines for later inspection.
type HistoryStore interface {
	Append(input string, res domain.ConversionResult) error
	Recent(limit int) ([]domain.HistoryEntry, error)
}
