// Package cli wires the cobra command tree and the bubbletea shell over the
// service layer. Commands are thin: resolve arguments, call a service,
// format the result.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/auth"
	"github.com/togetherforward/forward/internal/luna"
	"github.com/togetherforward/forward/internal/nav"
	"github.com/togetherforward/forward/internal/repository"
	"github.com/togetherforward/forward/internal/service"
)

// App holds references to all collaborators used by CLI commands and the
// TUI. The Luna fields stay nil when the LLM is disabled.
type App struct {
	Dreams      service.DreamService
	Milestones  service.MilestoneService
	Tasks       service.TaskService
	Budget      service.BudgetService
	Assessments service.AssessmentService
	Portfolio   service.PortfolioService
	Templates   service.TemplateService
	Invites     service.InviteService
	Guest       service.GuestDreamService
	Profile     service.ProfileService

	Auth  *auth.Client
	Inbox *auth.Inbox
	KV    repository.LocalKV

	// GateObs, when set, receives a line per auth-gate decision. Nil means
	// no gate logging; NewGate substitutes its noop observer.
	GateObs nav.GateObserver

	Draft    luna.DreamDraftService
	Chat     luna.ChatService
	Optimize luna.OptimizeService

	// IsInteractive reports whether stdin is a terminal; bare `forward`
	// enters the TUI only when it is.
	IsInteractive func() bool
}

// currentOwnerID returns the signed-in user's id, or the local-mode owner
// when auth is not configured.
const localOwnerID = "local"

func (a *App) currentOwnerID() string {
	if a.Auth != nil {
		if u := a.Auth.CurrentUser(); u != nil {
			return u.ID
		}
	}
	return localOwnerID
}

// NewRootCmd creates the top-level "forward" command and registers all
// subcommands against the provided App. Bare `forward` on a terminal starts
// the TUI shell.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "forward",
		Short: "Plan life goals together",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app, nav.RootPath)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newOpenCmd(app),
		newDreamCmd(app),
		newTaskCmd(app),
		newBudgetCmd(app),
		newAssessmentCmd(app),
		newPortfolioCmd(app),
		newTemplateCmd(app),
		newInviteCmd(app),
		newLunaCmd(app),
	)

	return root
}
