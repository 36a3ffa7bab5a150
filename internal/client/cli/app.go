package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/coachdesk/coachdesk/internal/client/api"
	"github.com/coachdesk/coachdesk/internal/client/config"
	"github.com/coachdesk/coachdesk/internal/client/models"
	"github.com/coachdesk/coachdesk/internal/client/state"
	"github.com/coachdesk/coachdesk/internal/client/store"
	"github.com/coachdesk/coachdesk/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive CoachDesk console. It owns the store tree and the
// stdin reader; every command reads its inputs, dispatches to a store, and
// prints the resulting snapshot.
type App struct {
	config *config.Config
	root   *store.Root
	log    logging.Logger
	reader *bufio.Reader

	// lastKind is the report kind most recently listed; dismiss and
	// delreported act on it.
	lastKind models.ReportKind
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, c.StateDSN)
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	repo := state.NewSQLiteRepository(db)
	apiClient := api.New(c.BaseURL, c.RequestTimeout, log)
	root := store.NewRoot(apiClient, repo, log, c.SearchDebounce)

	return &App{config: c, root: root, log: log, reader: bufio.NewReader(os.Stdin)}, nil
}

// Run restores the persisted session, resolves the current user when a token
// survived the restart, and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.root.Close()

	if err := a.root.Rehydrate(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed, starting anonymous", "error", err)
	}
	if a.root.Session.Snapshot().Token != "" {
		// An expired token clears itself here; no user action needed.
		_ = a.root.Session.LoadUser(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.root.Session.Snapshot().IsAuthenticated
}

// status renders the prompt suffix: the signed-in user's email and role, or
// nothing when anonymous.
func (a *App) status() string {
	s := a.root.Session.Snapshot()
	if s.User == nil {
		return ""
	}
	return "(" + s.User.Email + " " + string(s.User.Role) + ")"
}
