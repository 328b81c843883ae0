package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ksaito/studypace/internal/domain"
	"github.com/ksaito/studypace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive runs one Update and executes any returned command synchronously,
// feeding resulting messages back until the model settles.
func drive(t *testing.T, m viewModel, msg tea.Msg) viewModel {
	t.Helper()
	for msg != nil {
		var cmd tea.Cmd
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(viewModel)
		if cmd == nil {
			return m
		}
		msg = cmd()
		if _, quit := msg.(tea.QuitMsg); quit {
			return m
		}
	}
	return m
}

func newTestViewModel(t *testing.T) viewModel {
	t.Helper()
	app := &App{
		Sync: &fakeSyncService{result: &service.SyncResult{Observations: 3, Goals: 1}},
		Progress: &fakeProgressService{views: map[domain.Month]*domain.MonthView{
			{Year: 2026, Month: time.January}: janView(t),
		}},
		Config: validConfig(),
	}
	m := newViewModel(app, domain.Month{Year: 2026, Month: time.January})
	return drive(t, m, m.Init()())
}

func TestViewModel_LoadsInitialMonth(t *testing.T) {
	m := newTestViewModel(t)

	require.NotNil(t, m.view)
	assert.Contains(t, m.View(), "2026-Jan")
}

func TestViewModel_ArrowsChangeMonth(t *testing.T) {
	m := newTestViewModel(t)

	m = drive(t, m, keyMsg("left"))
	assert.Equal(t, domain.Month{Year: 2025, Month: time.December}, m.month)

	m = drive(t, m, keyMsg("right"))
	m = drive(t, m, keyMsg("right"))
	assert.Equal(t, domain.Month{Year: 2026, Month: time.February}, m.month)
}

func TestViewModel_JumpToMonth(t *testing.T) {
	m := newTestViewModel(t)

	m = drive(t, m, keyMsg("g"))
	require.True(t, m.jumping)

	for _, r := range "2025-06" {
		m = drive(t, m, keyMsg(string(r)))
	}
	m = drive(t, m, keyMsg("enter"))

	assert.False(t, m.jumping)
	assert.Equal(t, domain.Month{Year: 2025, Month: time.June}, m.month)
}

func TestViewModel_JumpRejectsGarbage(t *testing.T) {
	m := newTestViewModel(t)

	m = drive(t, m, keyMsg("g"))
	m = drive(t, m, keyMsg("x"))
	m = drive(t, m, keyMsg("enter"))

	assert.True(t, m.jumping, "stays in jump mode on a bad month")
	assert.Contains(t, m.View(), "expected YYYY-MM")
}

func TestViewModel_JumpEscCancels(t *testing.T) {
	m := newTestViewModel(t)
	before := m.month

	m = drive(t, m, keyMsg("g"))
	m = drive(t, m, keyMsg("esc"))

	assert.False(t, m.jumping)
	assert.Equal(t, before, m.month)
}

func TestViewModel_ResyncReloads(t *testing.T) {
	m := newTestViewModel(t)
	sync := m.app.Sync.(*fakeSyncService)

	m = drive(t, m, keyMsg("r"))

	assert.Equal(t, 1, sync.calls)
	assert.Contains(t, m.View(), "synced 3 observations, 1 goals")
}

func TestViewModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := newTestViewModel(t)
		next, cmd := m.Update(keyMsg(key))
		m = next.(viewModel)

		require.NotNil(t, cmd, "key %q should quit", key)
		assert.Equal(t, tea.Quit(), cmd())
		assert.Empty(t, m.View())
	}
}
