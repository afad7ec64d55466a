package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type screen int

const (
	screenConvert screen = iota
	screenUnits
)

const maxTranscript = 200

type unitItem struct {
	unit domain.Unit
}

func (u unitItem) Title() string {
	return fmt.Sprintf("%s  %s / %s", u.unit.Symbol, u.unit.Singular, u.unit.Plural)
}
func (u unitItem) Description() string {
	return u.unit.Family.String() + " • " + strings.Join(u.unit.Aliases, ", ")
}
func (u unitItem) FilterValue() string { return strings.Join(u.unit.Aliases, " ") }

type transcriptLine struct {
	input   string
	message string
	ok      bool
	past    bool
}

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr   screen
	input textinput.Model
	units list.Model

	transcript []transcriptLine
	toast      string
	width      int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(guard(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if deps.Prompt == "" {
		deps.Prompt = domain.DefaultPrompt
	}

	ti := textinput.New()
	ti.Placeholder = "5 m to cm"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	items := make([]list.Item, 0, len(deps.Units))
	for _, u := range deps.Units {
		items = append(items, unitItem{unit: u})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Units"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: t,
		deps:  deps,
		log:   log,
		scr:   screenConvert,
		input: ti,
		units: l,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdLoadHistory(m.deps.History))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 8
		m.units.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.log.Warn("history.load.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		past := make([]transcriptLine, 0, len(msg.entries))
		for _, e := range msg.entries {
			past = append(past, transcriptLine{input: e.Input, message: e.Message, ok: e.Kind == "", past: true})
		}
		m.transcript = append(past, m.transcript...)
		return m, nil

	case historyAppendedMsg:
		if msg.err != nil {
			m.log.Warn("history.append.failed", "input", msg.input, "err", msg.err)
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			if m.scr == screenConvert {
				m.scr = screenUnits
				m.input.Blur()
			} else {
				m.scr = screenConvert
				m.input.Focus()
			}
			return m, nil

		case "esc":
			if m.scr == screenUnits && !m.units.SettingFilter() {
				m.scr = screenConvert
				m.input.Focus()
				return m, nil
			}
			if m.scr == screenConvert {
				return m, tea.Quit
			}

		case "enter":
			if m.scr == screenConvert {
				return m.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenUnits:
		m.units, cmd = m.units.Update(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.toast = ""

	if usecase.IsExit(line) {
		return m, tea.Quit
	}

	res := m.deps.Engine.Evaluate(line)
	m.log.Debug("session.line", "input", line, "kind", string(res.Kind))

	m.transcript = append(m.transcript, transcriptLine{input: line, message: res.Message, ok: res.OK()})
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}

	return m, cmdAppendHistory(m.deps.History, line, res)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	sub := "length • mass • temperature"
	if m.deps.ConfigRoot != "" {
		sub += " • " + m.deps.ConfigRoot
	}
	if m.deps.Debug {
		sub += " • debug"
		if m.deps.LogPath != "" {
			sub += " → " + m.deps.LogPath
		}
	}
	header := m.theme.Title.Render("unitconv") + "\n" +
		m.theme.Subtitle.Render(sub) + "\n"

	switch m.scr {
	case screenConvert:
		body := renderTranscript(m.theme, m.transcript, 12, m.width-8)
		prompt := m.theme.Help.Render(m.deps.Prompt)

		out := header + "\n" + m.theme.Card.Render(body+"\n\n"+prompt+"\n"+m.input.View())
		if m.toast != "" {
			out += "\n" + m.theme.Error.Render(m.toast)
		}
		out += "\n" + m.theme.Help.Render("enter convert • tab units • esc quit")
		return wrap.Render(out)

	case screenUnits:
		help := m.theme.Help.Render("↑/↓ navigate • / search • tab/esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.units.View()) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

// recovered puts the model back on the convert screen after a panic.
func (m model) recovered() model {
	m.scr = screenConvert
	m.input.Reset()
	m.input.Focus()
	m.toast = "Could not handle that input"
	if m.deps.LogPath != "" {
		m.toast += " (details in " + m.deps.LogPath + ")"
	}
	return m
}
