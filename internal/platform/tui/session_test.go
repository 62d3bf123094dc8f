package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestMenuListsModesAndCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(80, 24, config.DifficultyFixed, 12)
	require.NotEmpty(t, m.items)
	assert.Equal(t, "snake", m.items[0].GameID)
	assert.Contains(t, m.View(), "Highscore: 12")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	assert.Equal(t, config.DifficultyEasy, m.Preset())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	assert.Equal(t, config.DifficultyHard, m.Preset(), "difficulty wraps around")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "snake_freeze", m.Selected().GameID)
	assert.NotNil(t, cmd)
}

func testEnv() Env {
	mem := storage.NewMemory()
	rt := core.DefaultConfig()
	rt.Scores = mem.HighScores("snake_highscore")
	return Env{
		Snake:   config.DefaultSnakeConfig(),
		Runtime: rt,
		History: mem,
		Preset:  config.DifficultyFixed,
	}
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(testEnv(), "tester")
	assert.NotEmpty(t, m.ID())

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)
	require.NotNil(t, m.gameModel)
	assert.NotNil(t, cmd, "starting a game schedules the first tick")
	assert.Contains(t, m.View(), "Score")

	// Pause, let a tick apply it, then leave.
	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg{ID: m.gameModel.loopID})
	require.True(t, m.gameModel.State().Paused)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.gameModel)
	assert.False(t, m.quitting)
}

func TestSessionScoreboard(t *testing.T) {
	env := testEnv()
	require.NoError(t, env.History.RecordRun("snake", 5))
	m := NewSessionModel(env, "tester")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewScores, m.view)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testEnv(), "tester")

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
