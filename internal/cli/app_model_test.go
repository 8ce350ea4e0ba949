package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togetherforward/forward/internal/nav"
)

func keyRunes(m *appModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestAppModel_StartsAtLanding(t *testing.T) {
	app := testApp(t)

	m := newAppModel(app, nav.RootPath)
	assert.Equal(t, nav.StageLanding, m.machine.Stage())
	assert.Contains(t, m.View(), "TOGETHER FORWARD")
}

func TestAppModel_DeepLinkOpensDream(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Wedding")

	m := newAppModel(app, "/dream/"+d.ID+"/budget")
	assert.Equal(t, nav.StageMilestoneDetail, m.machine.Stage())
	assert.Equal(t, d.ID, m.machine.DreamID())
	assert.Equal(t, nav.SectionBudget, m.machine.Section())
	require.NotNil(t, m.detail)
	assert.Contains(t, m.View(), "WEDDING")
}

func TestAppModel_EnterOpensDashboard(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")

	m := newAppModel(app, nav.RootPath)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.StageDashboard, m.machine.Stage())
	assert.Contains(t, m.View(), "Wedding")
}

func TestAppModel_DashboardSelectAndOpen(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")
	seedDream(t, app, "House")

	m := newAppModel(app, nav.RootPath)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, nav.StageDashboard, m.machine.Stage())
	require.Len(t, m.dreams, 2)

	keyRunes(m, "j")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, nav.StageMilestoneDetail, m.machine.Stage())
	assert.Equal(t, m.dreams[1].ID, m.machine.DreamID())
}

func TestAppModel_EscWalksHistoryBack(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")

	m := newAppModel(app, nav.RootPath)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, nav.StageMilestoneDetail, m.machine.Stage())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, nav.StageDashboard, m.machine.Stage())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, nav.StageLanding, m.machine.Stage())
}

func TestAppModel_TabCyclesSections(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Wedding")

	m := newAppModel(app, "/dream/"+d.ID)
	require.Equal(t, nav.StageMilestoneDetail, m.machine.Stage())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, nav.SectionRoadmap, m.machine.Section())

	keyRunes(m, "5")
	assert.Equal(t, nav.SectionTasks, m.machine.Section())
}

func TestAppModel_PortfolioView(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")
	seedDream(t, app, "House")

	m := newAppModel(app, "/portfolio")
	require.Equal(t, nav.StagePortfolioOverview, m.machine.Stage())
	require.NotNil(t, m.analysis)
	assert.Contains(t, m.View(), "2 active dreams")
}

func TestAppModel_OptimizeWithoutLuna(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")

	m := newAppModel(app, "/portfolio")
	keyRunes(m, "o")

	assert.Equal(t, nav.StagePortfolioOverview, m.machine.Stage())
	assert.Contains(t, m.View(), "Luna is not enabled")
}

func TestAppModel_QuitKeys(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app, nav.RootPath)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
