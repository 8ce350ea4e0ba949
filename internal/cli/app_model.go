package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/togetherforward/forward/internal/auth"
	"github.com/togetherforward/forward/internal/cli/formatter"
	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/nav"
)

// runShell starts the interactive shell at the given path. Bare `forward`
// passes the root path; `forward open` passes a deep link.
func runShell(app *App, startPath string) error {
	m := newAppModel(app, startPath)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// appModel is the bubbletea shell. The navigation machine owns which view
// renders; the model only holds the data the active stage needs.
type appModel struct {
	app     *App
	machine *nav.Machine
	gate    *nav.Gate

	dreams   []*domain.Dream
	detail   *formatter.DreamDetailData
	analysis *contract.AnalyzeResponse
	optimize *contract.OptimizeResponse

	cursor  int
	notice  string
	loadErr string
	width   int
	height  int
}

// noAuth is the gate's auth view when no auth service is configured:
// never loading, never a user.
type noAuth struct{}

func (noAuth) Loading() bool           { return false }
func (noAuth) CurrentUser() *auth.User { return nil }

type authCheckMsg struct{}

// keyMap holds the global shell bindings; per-stage keys are matched inline.
type keyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Forward key.Binding
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Section key.Binding
}

var shellKeys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	Back:    key.NewBinding(key.WithKeys("esc")),
	Forward: key.NewBinding(key.WithKeys("alt+right")),
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Select:  key.NewBinding(key.WithKeys("enter")),
	Section: key.NewBinding(key.WithKeys("tab")),
}

func newAppModel(app *App, startPath string) *appModel {
	history := nav.NewHistory(nav.RootPath)
	machine := nav.NewMachine(history)

	m := &appModel{app: app, machine: machine}

	inbox := app.Inbox
	if inbox == nil {
		inbox = auth.NewInbox()
	}
	var authState nav.AuthState = noAuth{}
	if app.Auth != nil {
		authState = app.Auth
	}
	m.gate = nav.NewGate(nav.GateDeps{
		Machine:  machine,
		Inbox:    inbox,
		Auth:     authState,
		Dreams:   app.Dreams,
		Guest:    app.Guest,
		KV:       app.KV,
		Notify:   func(msg string) { m.notice = msg },
		Observer: app.GateObs,
	})

	machine.OnStageChange(func(nav.Stage) { m.reload() })

	if startPath != "" && startPath != nav.RootPath {
		machine.Open(startPath)
	}
	m.gate.Evaluate(context.Background())
	m.reload()

	return m
}

func (m *appModel) Init() tea.Cmd {
	if m.app.Auth != nil {
		return authCheckTick()
	}
	return nil
}

// authCheckTick drains the auth inbox periodically so session refreshes and
// sign-outs redirect the shell without user input.
func authCheckTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return authCheckMsg{} })
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case authCheckMsg:
		m.gate.Evaluate(context.Background())
		return m, authCheckTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, shellKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, shellKeys.Back):
		m.machine.Back()
		return m, nil
	case key.Matches(msg, shellKeys.Forward):
		m.machine.Forward()
		return m, nil
	}

	switch m.machine.Stage() {
	case nav.StageLanding:
		m.handleLandingKey(msg)
	case nav.StageDashboard:
		m.handleDashboardKey(msg)
	case nav.StageMilestoneDetail, nav.StageDeepDive:
		m.handleDetailKey(msg)
	case nav.StagePortfolioOverview:
		m.handlePortfolioKey(msg)
	}
	return m, nil
}

func (m *appModel) handleLandingKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, shellKeys.Select):
		m.machine.SetStage(nav.StageDashboard)
	case msg.String() == "p":
		m.machine.SetStage(nav.StagePricing)
	}
}

func (m *appModel) handleDashboardKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, shellKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, shellKeys.Down):
		if m.cursor < len(m.dreams)-1 {
			m.cursor++
		}
	case key.Matches(msg, shellKeys.Select):
		if m.cursor < len(m.dreams) {
			m.machine.OpenDream(m.dreams[m.cursor].ID, "")
		}
	case msg.String() == "p":
		m.machine.SetStage(nav.StagePortfolioOverview)
	}
}

// sectionOrder drives tab cycling and the 1-5 shortcuts in the detail view.
var sectionOrder = []string{
	nav.SectionOverview, nav.SectionRoadmap, nav.SectionBudget,
	nav.SectionAssessment, nav.SectionTasks,
}

func (m *appModel) handleDetailKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, shellKeys.Section):
		current := m.machine.Section()
		for i, s := range sectionOrder {
			if s == current {
				m.machine.SetSection(sectionOrder[(i+1)%len(sectionOrder)])
				return
			}
		}
		m.machine.SetSection(sectionOrder[0])
	default:
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
			m.machine.SetSection(sectionOrder[s[0]-'1'])
		}
	}
}

func (m *appModel) handlePortfolioKey(msg tea.KeyMsg) {
	if msg.String() != "o" {
		return
	}
	if m.app.Optimize == nil {
		m.notice = "Luna is not enabled; set FORWARD_LLM_ENABLED=true"
		return
	}
	if m.analysis == nil {
		return
	}
	resp, err := m.app.Optimize.Optimize(context.Background(), contract.OptimizeRequest{Analysis: *m.analysis})
	if err != nil {
		m.loadErr = err.Error()
		return
	}
	m.optimize = resp
	m.machine.SetStage(nav.StageLunaOptimization)
}

// reload fetches whatever the active stage renders. Reads hit local SQLite,
// so doing them inline keeps the model free of async message plumbing.
func (m *appModel) reload() {
	ctx := context.Background()
	m.loadErr = ""

	switch m.machine.Stage() {
	case nav.StageDashboard:
		dreams, err := m.app.Dreams.List(ctx, false)
		if err != nil {
			m.loadErr = err.Error()
			return
		}
		m.dreams = dreams
		if m.cursor >= len(dreams) {
			m.cursor = 0
		}

	case nav.StageMilestoneDetail, nav.StageDeepDive:
		dreamID := m.machine.DreamID()
		if dreamID == "" {
			return
		}
		d, err := m.app.Dreams.GetByID(ctx, dreamID)
		if err != nil {
			m.loadErr = err.Error()
			return
		}
		milestones, _ := m.app.Milestones.ListByDream(ctx, dreamID)
		tasks, _ := m.app.Tasks.ListByDream(ctx, dreamID)
		budget, _ := m.app.Budget.ListByDream(ctx, dreamID)
		m.detail = &formatter.DreamDetailData{
			Dream:      d,
			Milestones: milestones,
			Tasks:      tasks,
			Budget:     budget,
			Currency:   m.currencyOrDefault(ctx),
		}

	case nav.StagePortfolioOverview:
		analysis, err := m.app.Portfolio.Analyze(ctx, contract.AnalyzeRequest{})
		if err != nil {
			m.loadErr = err.Error()
			m.analysis = nil
			return
		}
		m.analysis = analysis
	}
}

func (m *appModel) currencyOrDefault(ctx context.Context) string {
	if m.app.Profile == nil {
		return domain.DefaultCurrency
	}
	return m.app.currency(ctx)
}

func (m *appModel) View() string {
	var b strings.Builder

	stage := m.machine.Stage()
	b.WriteString(formatter.StyleHeader.Render("forward"))
	b.WriteString(formatter.Dim(fmt.Sprintf("  %s", m.machine.Path())))
	b.WriteString("\n\n")

	switch stage {
	case nav.StageLanding:
		b.WriteString(m.viewLanding())
	case nav.StageDashboard:
		b.WriteString(m.viewDashboard())
	case nav.StageMilestoneDetail, nav.StageDeepDive:
		b.WriteString(m.viewDetail())
	case nav.StagePortfolioOverview:
		b.WriteString(m.viewPortfolio())
	case nav.StageLunaOptimization:
		b.WriteString(m.viewOptimize())
	case nav.StageResults:
		b.WriteString(m.viewResults())
	case nav.StagePricing:
		b.WriteString(m.viewPricing())
	case nav.StageLoading:
		b.WriteString(formatter.Dim("Loading..."))
	default:
		b.WriteString(formatter.Dim(fmt.Sprintf("(%s)", stage)))
	}

	if m.loadErr != "" {
		b.WriteString("\n\n" + formatter.StyleRed.Render("! "+m.loadErr))
	}
	if m.notice != "" {
		b.WriteString("\n\n" + formatter.StyleYellow.Render(m.notice))
	}

	b.WriteString("\n\n" + formatter.Dim(m.footerHints(stage)))
	return b.String()
}

func (m *appModel) viewLanding() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Together Forward"))
	b.WriteString("\n\nPlan your shared goals, budgets and milestones together.\n")
	return b.String()
}

func (m *appModel) viewDashboard() string {
	if len(m.dreams) == 0 {
		return formatter.Dim("No dreams yet. Run `forward dream add` or `forward luna draft` to start one.")
	}
	var b strings.Builder
	b.WriteString(formatter.Header("Dreams"))
	b.WriteString("\n\n")
	for i, d := range m.dreams {
		marker := "  "
		line := fmt.Sprintf("%s  %s  %s", d.DisplayID(), d.Title, formatter.StatusPill(d.Status))
		if i == m.cursor {
			marker = formatter.Bold("> ")
			line = formatter.Bold(fmt.Sprintf("%s  %s", d.DisplayID(), d.Title)) + "  " + formatter.StatusPill(d.Status)
		}
		b.WriteString(marker + line + "\n")
		if d.TargetAmountCents > 0 {
			pct := d.ProgressPct()
			b.WriteString("    " + formatter.RenderProgress(pct, 20) + "\n")
		}
	}
	return b.String()
}

func (m *appModel) viewDetail() string {
	if m.detail == nil || m.detail.Dream == nil {
		return formatter.Dim("No dream selected.")
	}
	var b strings.Builder
	b.WriteString(m.sectionTabs())
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatDreamDetail(*m.detail))
	return b.String()
}

func (m *appModel) sectionTabs() string {
	active := m.machine.Section()
	if active == "" {
		active = nav.SectionOverview
	}
	parts := make([]string, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		if s == active {
			parts = append(parts, formatter.Bold("["+s+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+s+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *appModel) viewPortfolio() string {
	if m.analysis == nil {
		return formatter.Dim("No active dreams to analyze.")
	}
	return formatter.FormatAnalysis(m.analysis, m.currencyOrDefault(context.Background()))
}

func (m *appModel) viewOptimize() string {
	if m.optimize == nil {
		return formatter.Dim("No suggestions yet.")
	}
	return formatter.FormatOptimize(m.optimize)
}

func (m *appModel) viewResults() string {
	return formatter.Dim("Score a completed quiz with `forward assessment score SESSION_ID`.")
}

func (m *appModel) viewPricing() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Plans"))
	b.WriteString("\n\n")
	b.WriteString(formatter.Bold("Free") + "  up to 3 active dreams, local only\n")
	b.WriteString(formatter.Bold("Plus") + "  unlimited dreams, partner sync, Luna assistant\n")
	return b.String()
}

func (m *appModel) footerHints(stage nav.Stage) string {
	switch stage {
	case nav.StageLanding:
		return "enter dashboard · p pricing · q quit"
	case nav.StageDashboard:
		return "↑/↓ select · enter open · p portfolio · esc back · q quit"
	case nav.StageMilestoneDetail, nav.StageDeepDive:
		return "tab/1-5 section · esc back · q quit"
	case nav.StagePortfolioOverview:
		return "o optimize with Luna · esc back · q quit"
	default:
		return "esc back · q quit"
	}
}
