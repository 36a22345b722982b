package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tutoradmin/internal/client/stores"
	"github.com/dmitrijs2005/tutoradmin/internal/common"
	"github.com/dmitrijs2005/tutoradmin/internal/logging"
	"go.uber.org/fx"
)

// pageLimit is the page size of every listing command.
const pageLimit = 20

// Params are the App dependencies supplied by fx.
type Params struct {
	fx.In

	Auth    *stores.AuthStore
	Admin   *stores.AdminStore
	Parents *stores.ParentStore
	Tutors  *stores.TutorStore
	Router  *Router
	Logger  logging.Logger
}

type App struct {
	auth    *stores.AuthStore
	admin   *stores.AdminStore
	parents *stores.ParentStore
	tutors  *stores.TutorStore
	router  *Router
	logger  logging.Logger

	reader   *bufio.Reader
	out      io.Writer
	commands map[string]command
	order    []string
}

// NewApp builds the console on stdin and stdout.
func NewApp(p Params) *App {
	return newApp(p, os.Stdin, os.Stdout)
}

func newApp(p Params, in io.Reader, out io.Writer) *App {
	a := &App{
		auth:    p.Auth,
		admin:   p.Admin,
		parents: p.Parents,
		tutors:  p.Tutors,
		router:  p.Router,
		logger:  p.Logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}
	a.registerCommands()
	return a
}

// Run restores the saved session, asks for credentials when there is none
// and serves commands until the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	a.auth.InitializeAuth(ctx)

	fmt.Fprintln(a.out, "Tutor admin console (type 'help' for commands)")

	if a.isLoggedIn() {
		a.router.set(common.RouteDashboard)
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.auth.Snapshot().User.DisplayName())
	} else if err := a.Login(ctx); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Snapshot().IsAuthenticated
}

func (a *App) getStatus() string {
	st := a.auth.Snapshot()
	if !st.IsAuthenticated {
		return "(signed out)"
	}
	return fmt.Sprintf("(%s %s)", st.User.Email, a.router.CurrentRoute())
}
