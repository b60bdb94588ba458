package main

import (
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riverfjs/richtext-go"
)

const frameInterval = time.Second / 30

// PreviewCmd shows the annotated text and replays fades on demand.
type PreviewCmd struct {
	SourceFlags `embed:""`

	AltScreen bool `default:"true" negatable:"" help:"Use the alternate screen"`
}

func (c *PreviewCmd) Run(ctx *kong.Context) error {
	m, err := newPreviewModel(c.Load)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithOutput(ctx.Stdout)}
	if c.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if c.Input == "-" {
		// stdin carried the document; keys come from the terminal
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a73e8"))
)

type previewModel struct {
	load    func(...richtext.Option) (*richtext.View, error)
	view    *richtext.View
	redraws int
	playing bool
	status  string
}

func newPreviewModel(load func(...richtext.Option) (*richtext.View, error)) (*previewModel, error) {
	m := &previewModel{load: load}
	v, err := load(richtext.WithInvalidate(m.invalidate))
	if err != nil {
		return nil, err
	}
	m.view = v
	m.playing = true
	return m, nil
}

func (m *previewModel) invalidate() { m.redraws++ }

func (m *previewModel) Init() tea.Cmd {
	return tick()
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.playing = m.view.Tick(time.Time(msg))
		if m.playing {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c":
			if err := clipboard.WriteAll(m.view.Text()); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = fmt.Sprintf("copied %d characters", len([]rune(m.view.Text())))
			}
		case "r":
			// reloading restarts every fade from zero
			v, err := m.load(richtext.WithInvalidate(m.invalidate))
			if err != nil {
				m.status = "reload failed: " + err.Error()
				return m, nil
			}
			m.view = v
			m.status = "reloaded"
			if !m.playing {
				m.playing = true
				return m, tick()
			}
		}
	}
	return m, nil
}

func (m *previewModel) View() string {
	body := m.view.RenderTerminal(richtext.TerminalOptions{})
	footer := helpStyle.Render(fmt.Sprintf("q quit • c copy text • r replay • %d redraws", m.redraws))
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return body + "\n\n" + footer + "\n"
}
