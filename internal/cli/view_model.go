package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ksaito/studypace/internal/cli/formatter"
	"github.com/ksaito/studypace/internal/domain"
)

// viewModel is the interactive month browser. It renders one month at a
// time and reloads from the snapshot whenever the month changes.
type viewModel struct {
	app   *App
	month domain.Month
	view  *domain.MonthView
	err   error

	jumping bool
	jump    textinput.Model

	syncing bool
	status  string

	quitting bool
}

type monthLoadedMsg struct {
	month domain.Month
	view  *domain.MonthView
	err   error
}

type syncDoneMsg struct {
	observations int
	goals        int
	err          error
}

func newViewModel(app *App, month domain.Month) viewModel {
	jump := textinput.New()
	jump.Placeholder = "2026-01"
	jump.CharLimit = 8
	jump.Width = 10

	return viewModel{app: app, month: month, jump: jump}
}

func (m viewModel) Init() tea.Cmd {
	return m.loadMonth(m.month)
}

func (m viewModel) loadMonth(month domain.Month) tea.Cmd {
	return func() tea.Msg {
		view, err := m.app.Progress.MonthView(context.Background(), month)
		return monthLoadedMsg{month: month, view: view, err: err}
	}
}

func (m viewModel) runSync() tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.Sync.Refresh(context.Background())
		if err != nil {
			return syncDoneMsg{err: err}
		}
		return syncDoneMsg{observations: result.Observations, goals: result.Goals}
	}
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthLoadedMsg:
		m.month = msg.month
		m.view = msg.view
		m.err = msg.err
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(fmt.Sprintf("sync failed: %v", msg.err))
			return m, nil
		}
		m.status = formatter.StyleGreen.Render(
			fmt.Sprintf("synced %d observations, %d goals", msg.observations, msg.goals))
		return m, m.loadMonth(m.month)

	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m viewModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.status = ""
		return m, m.loadMonth(m.month.Prev())
	case "right", "l":
		m.status = ""
		return m, m.loadMonth(m.month.Next())
	case "g":
		m.jumping = true
		m.status = ""
		m.jump.SetValue("")
		return m, m.jump.Focus()
	case "r":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		return m, m.runSync()
	}
	return m, nil
}

func (m viewModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		return m, nil
	case "enter":
		month, err := domain.ParseMonth(strings.TrimSpace(m.jump.Value()))
		if err != nil {
			m.status = formatter.StyleRed.Render("expected YYYY-MM, e.g. 2026-01")
			return m, nil
		}
		m.jumping = false
		m.status = ""
		return m, m.loadMonth(month)
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
	case m.view == nil:
		b.WriteString(formatter.Dim("loading "+m.month.String()+"...") + "\n")
	default:
		b.WriteString(formatter.FormatMonthView(m.view))
	}

	b.WriteString("\n")
	if m.jumping {
		b.WriteString("jump to month: " + m.jump.View() + "\n")
		b.WriteString(formatter.Dim("enter to go, esc to cancel") + "\n")
		return b.String()
	}

	if m.syncing {
		b.WriteString(formatter.StyleYellow.Render("syncing...") + "\n")
	} else if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(formatter.Dim("←/→ month · g jump · r sync · q quit") + "\n")
	return b.String()
}
