package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// guarded recovers panics from Update and View. The offending message is
// logged and the model goes back to the convert screen.
type guarded struct {
	m   model
	log *slog.Logger
}

func guard(m model, log *slog.Logger) guarded {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return guarded{m: m, log: log}
}

func (g guarded) Init() tea.Cmd {
	return g.m.Init()
}

func (g guarded) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("tui.panic",
				"phase", "update",
				"msg", fmt.Sprintf("%T", msg),
				"input", g.m.input.Value(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			g.m = g.m.recovered()
			next, cmd = g, nil
		}
	}()

	inner, c := g.m.Update(msg)
	if mm, ok := inner.(model); ok {
		g.m = mm
	}
	return g, c
}

func (g guarded) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("tui.panic",
				"phase", "view",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			out = "unitconv could not draw the screen; press ctrl+c to quit"
		}
	}()
	return g.m.View()
}

var _ tea.Model = guarded{}
