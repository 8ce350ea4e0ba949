package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/togetherforward/forward/internal/auth"
	"github.com/togetherforward/forward/internal/cli"
	"github.com/togetherforward/forward/internal/db"
	"github.com/togetherforward/forward/internal/llm"
	"github.com/togetherforward/forward/internal/luna"
	"github.com/togetherforward/forward/internal/nav"
	"github.com/togetherforward/forward/internal/repository"
	"github.com/togetherforward/forward/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.forward/forward.db
	dbPath := os.Getenv("FORWARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".forward", "forward.db")
	}

	// Extra goal templates beyond the builtins, if the directory exists.
	templateDir := os.Getenv("FORWARD_TEMPLATES")
	if templateDir == "" {
		if stat, err := os.Stat("./templates"); err == nil && stat.IsDir() {
			templateDir = "./templates"
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	dreamRepo := repository.NewSQLiteDreamRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	budgetRepo := repository.NewSQLiteBudgetRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	inviteRepo := repository.NewSQLiteInviteRepo(database)
	kv := repository.NewSQLiteLocalKV(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Dreams:      service.NewDreamService(dreamRepo),
		Milestones:  service.NewMilestoneService(milestoneRepo, dreamRepo),
		Tasks:       service.NewTaskService(taskRepo, milestoneRepo),
		Budget:      service.NewBudgetService(budgetRepo),
		Assessments: service.NewAssessmentService(assessmentRepo),
		Portfolio:   service.NewPortfolioService(dreamRepo, profileRepo),
		Templates:   service.NewTemplateService(templateDir, uow),
		Invites:     service.NewInviteService(inviteRepo, dreamRepo),
		Guest:       service.NewGuestDreamService(kv, uow),
		Profile:     service.NewProfileService(profileRepo),
		KV:          kv,
	}

	// Detect interactive terminal for the shell entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Remote auth is optional; without it everything stays local.
	authCfg := auth.LoadConfig()
	if authCfg.LogGate {
		app.GateObs = nav.NewLogGateObserver(os.Stderr)
	}
	if authCfg.Enabled() {
		inbox := auth.NewInbox()
		client := auth.NewClient(authCfg, inbox)
		ctx := context.Background()
		client.Restore(ctx)
		client.StartRefreshLoop(ctx)
		app.Auth = client
		app.Inbox = inbox
	}

	// Luna services wire up only when the LLM is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)

		app.Draft = luna.NewDreamDraftService(llmClient, observer)
		app.Chat = luna.NewChatService(llmClient, observer)
		app.Optimize = luna.NewOptimizeService(llmClient, observer)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
