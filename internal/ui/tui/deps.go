package tui

import (
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type Deps struct {
	Engine  *usecase.Engine
	Units   []domain.Unit
	History ports.HistoryStore // optional

	ConfigRoot string
	Prompt     string

	Logger  *slog.Logger
	LogPath string // empty when file logging is off
	Debug   bool
}
