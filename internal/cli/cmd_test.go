package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togetherforward/forward/internal/domain"
	"github.com/togetherforward/forward/internal/nav"
	"github.com/togetherforward/forward/internal/repository"
	"github.com/togetherforward/forward/internal/service"
	"github.com/togetherforward/forward/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	dreams := repository.NewSQLiteDreamRepo(database)
	milestones := repository.NewSQLiteMilestoneRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	budget := repository.NewSQLiteBudgetRepo(database)
	assessments := repository.NewSQLiteAssessmentRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	invites := repository.NewSQLiteInviteRepo(database)
	kv := repository.NewSQLiteLocalKV(database)
	uow := testutil.NewTestUoW(database)

	return &App{
		Dreams:      service.NewDreamService(dreams),
		Milestones:  service.NewMilestoneService(milestones, dreams),
		Tasks:       service.NewTaskService(tasks, milestones),
		Budget:      service.NewBudgetService(budget),
		Assessments: service.NewAssessmentService(assessments),
		Portfolio:   service.NewPortfolioService(dreams, profiles),
		Templates:   service.NewTemplateService("", uow),
		Invites:     service.NewInviteService(invites, dreams),
		Guest:       service.NewGuestDreamService(kv, uow),
		Profile:     service.NewProfileService(profiles),
		KV:          kv,
		// Auth and Luna services left nil: local mode, LLM disabled.
	}
}

// seedDream creates an active dream with a target amount for CLI tests.
func seedDream(t *testing.T, app *App, title string) *domain.Dream {
	t.Helper()
	target := time.Now().UTC().AddDate(0, 18, 0)
	d := testutil.NewTestDream(title,
		testutil.WithCategory(domain.CategoryWedding),
		testutil.WithTargetDate(target),
		testutil.WithTargetAmount(2_500_000),
		testutil.WithMonthlyContrib(100_000),
		testutil.WithOwner(localOwnerID),
	)
	require.NoError(t, app.Dreams.Create(context.Background(), d))
	return d
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root command ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "forward")
	assert.Contains(t, out, "Usage:")
}

// --- Dream commands ---

func TestDreamAddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "dream", "add",
		"--title", "Buy a house",
		"--category", "home",
		"--amount", "8000000",
		"--monthly", "200000")
	require.NoError(t, err)
	assert.Contains(t, out, "Created dream Buy a house")

	out, err = executeCmd(t, app, "dream", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy a house")
	assert.Contains(t, out, "home")
}

func TestDreamList_EmptyHint(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "dream", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No dreams yet")
}

func TestDreamAdd_RequiresTitle(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dream", "add", "--amount", "1000")
	assert.Error(t, err)
}

func TestDreamShow_ResolvesByTitle(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Dream Wedding")

	out, err := executeCmd(t, app, "dream", "show", "dream wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "DREAM WEDDING")
	assert.Contains(t, out, "25,000.00")
}

func TestDreamShow_ResolvesByPrefix(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Sabbatical")

	out, err := executeCmd(t, app, "dream", "show", d.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "SABBATICAL")
}

func TestDreamShow_UnknownReference(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dream", "show", "nope")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dream not found")
}

func TestDreamArchiveHidesFromDefaultList(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Old Plan")

	_, err := executeCmd(t, app, "dream", "archive", d.ID)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "dream", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Old Plan")

	out, err = executeCmd(t, app, "dream", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Old Plan")
}

func TestDreamRemove_ActiveNeedsForce(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Keeper")

	_, err := executeCmd(t, app, "dream", "remove", d.ID)
	assert.Error(t, err)

	out, err := executeCmd(t, app, "dream", "remove", d.ID, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed dream")
}

// --- Task commands ---

func TestTaskAddListDone(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Wedding")

	out, err := executeCmd(t, app, "task", "add",
		"--dream", "Wedding",
		"--title", "Book the venue",
		"--assignee", "me")
	require.NoError(t, err)
	assert.Contains(t, out, "Added task")

	tasks, err := app.Tasks.ListByDream(context.Background(), d.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	out, err = executeCmd(t, app, "task", "list", "--dream", "Wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "Book the venue")
	assert.Contains(t, out, "[ ]")

	_, err = executeCmd(t, app, "task", "done", tasks[0].ID)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "task", "list", "--dream", "Wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")
}

func TestTaskAssign(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Wedding")

	tk := testutil.NewTestTask(d.ID, "Send invites")
	require.NoError(t, app.Tasks.Create(context.Background(), tk))

	out, err := executeCmd(t, app, "task", "assign", tk.ID, "partner")
	require.NoError(t, err)
	assert.Contains(t, out, "Assigned task")

	got, err := app.Tasks.GetByID(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssigneePartner, got.Assignee)
}

// --- Budget commands ---

func TestBudgetSuggestApplyShow(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")

	out, err := executeCmd(t, app, "budget", "suggest", "--dream", "Wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "Venue")
	assert.Contains(t, out, "Catering")

	out, err = executeCmd(t, app, "budget", "apply", "--dream", "Wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied 7 budget categories")

	out, err = executeCmd(t, app, "budget", "show", "--dream", "Wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "Venue")
	assert.Contains(t, out, "10,000.00") // 40% of 25,000
}

func TestBudgetSpend(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Wedding")

	cats, err := app.Budget.ApplySuggestion(context.Background(), d.ID, d.Category, d.TargetAmountCents)
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	out, err := executeCmd(t, app, "budget", "spend", cats[0].ID, "--amount", "150000")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded 1,500.00")

	out, err = executeCmd(t, app, "budget", "show", "--dream", "Wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "1,500.00 spent")
}

func TestBudgetSuggest_NoTargetAmount(t *testing.T) {
	app := testApp(t)
	d := testutil.NewTestDream("Someday", testutil.WithOwner(localOwnerID))
	require.NoError(t, app.Dreams.Create(context.Background(), d))

	_, err := executeCmd(t, app, "budget", "suggest", "--dream", "Someday")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "target amount")
}

// --- Assessment commands ---

func TestAssessmentFullFlow(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	out, err := executeCmd(t, app, "assessment", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "join code")

	sess, err := app.Assessments.Start(ctx, "")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "assessment", "join", sess.JoinCode)
	require.NoError(t, err)
	assert.Contains(t, out, "Joined session")

	for _, q := range domain.QuizQuestions {
		_, err = executeCmd(t, app, "assessment", "answer",
			"--session", sess.ID, "--partner", "a",
			"--question", q.ID, "--value", "4")
		require.NoError(t, err)
		_, err = executeCmd(t, app, "assessment", "answer",
			"--session", sess.ID, "--partner", "b",
			"--question", q.ID, "--value", "5")
		require.NoError(t, err)
	}

	out, err = executeCmd(t, app, "assessment", "score", sess.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Overall")
}

func TestAssessmentScore_Incomplete(t *testing.T) {
	app := testApp(t)

	sess, err := app.Assessments.Start(context.Background(), "")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "assessment", "score", sess.ID)
	assert.Error(t, err)
}

func TestAssessmentJoin_BadCode(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "assessment", "join", "ZZZZZZ")
	assert.Error(t, err)
}

// --- Portfolio command ---

func TestPortfolioAnalyze(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")
	seedDream(t, app, "House Fund")

	out, err := executeCmd(t, app, "portfolio")
	require.NoError(t, err)
	assert.Contains(t, out, "2 active dreams")
}

func TestPortfolioOptimize_LunaDisabled(t *testing.T) {
	app := testApp(t)
	seedDream(t, app, "Wedding")

	_, err := executeCmd(t, app, "portfolio", "--optimize")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Luna is not enabled")
}

// --- Template commands ---

func TestTemplateList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Wedding")
	assert.Contains(t, out, "First home")
}

func TestTemplateInit(t *testing.T) {
	app := testApp(t)
	target := time.Now().UTC().AddDate(0, 12, 0).Format("2006-01-02")

	out, err := executeCmd(t, app, "template", "init",
		"--template", "wedding",
		"--title", "Our Wedding",
		"--target", target,
		"--amount", "3000000")
	require.NoError(t, err)
	assert.Contains(t, out, "Created dream Our Wedding")

	dreams, err := app.Dreams.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, dreams, 1)

	milestones, err := app.Milestones.ListByDream(context.Background(), dreams[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, milestones)

	budget, err := app.Budget.ListByDream(context.Background(), dreams[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, budget)
}

func TestTemplateInit_UnknownTemplate(t *testing.T) {
	app := testApp(t)
	target := time.Now().UTC().AddDate(0, 6, 0).Format("2006-01-02")

	_, err := executeCmd(t, app, "template", "init",
		"--template", "yacht", "--target", target)
	assert.Error(t, err)
}

// --- Invite commands ---

func TestInviteCreateAndAccept(t *testing.T) {
	app := testApp(t)
	d := seedDream(t, app, "Wedding")

	out, err := executeCmd(t, app, "invite", "create", "--dream", "Wedding")
	require.NoError(t, err)
	assert.Contains(t, out, "Share this code")

	inv, err := app.Invites.Create(context.Background(), domain.InviteDream, d.ID, localOwnerID)
	require.NoError(t, err)

	out, err = executeCmd(t, app, "invite", "accept", inv.Code)
	require.NoError(t, err)
	assert.Contains(t, out, "joined the dream")
}

func TestInvitePartnerAccept(t *testing.T) {
	app := testApp(t)

	inv, err := app.Invites.Create(context.Background(), domain.InvitePartner, "", localOwnerID)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "invite", "accept", inv.Code)
	require.NoError(t, err)
	assert.Contains(t, out, "partners on this account")
}

func TestInviteAccept_UnknownCode(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "invite", "accept", "NOCODE")
	assert.Error(t, err)
}

func TestOpenInvite_StagesPendingCode(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "open", "/invite/ABC123")
	require.NoError(t, err)
	assert.Contains(t, out, "stage invite")

	code, ok, err := app.KV.Get(context.Background(), nav.KeyPendingInviteCode)
	require.NoError(t, err)
	require.True(t, ok, "invite code must be staged for the auth gate")
	assert.Equal(t, "ABC123", code)
}

func TestOpenPartnerInvite_StagesPendingCode(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "open", "/partner-invite/XYZ789")
	require.NoError(t, err)

	code, ok, err := app.KV.Get(context.Background(), nav.KeyPendingPartnerInviteCode)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "XYZ789", code)
}

func TestOpenNonInvitePath_StagesNothing(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "open", "/dashboard")
	require.NoError(t, err)

	_, ok, err := app.KV.Get(context.Background(), nav.KeyPendingInviteCode)
	require.NoError(t, err)
	assert.False(t, ok)
}
