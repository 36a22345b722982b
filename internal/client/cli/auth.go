package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/client/stores"
	"github.com/dmitrijs2005/tutoradmin/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	ErrNotLoggedIn  = errors.New("please log in first")
	ErrAccessDenied = errors.New("access denied: admin role required")
	ErrInitializing = errors.New("session is still loading, try again")
)

// Login prompts for credentials and signs in through the auth store.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.router.set(common.RouteLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.auth.LoginUser(ctx, models.Credentials{Email: email, Password: string(password)})
	if !res.Success {
		return errors.New(res.Error)
	}

	if stores.Guard(a.auth.Snapshot(), models.RoleAdmin) == stores.DecisionDenied {
		a.router.set(common.RouteDenied)
		fmt.Fprintf(a.out, "Signed in as %s, but this console requires the %s role\n", res.Data.User.DisplayName(), models.RoleAdmin)
		return nil
	}

	a.router.set(common.RouteDashboard)
	fmt.Fprintf(a.out, "Signed in as %s\n", res.Data.User.DisplayName())
	return nil
}

// Logout forgets the session locally. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.router.set(common.RouteLogin)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) whoAmI(context.Context, []string) error {
	st := a.auth.Snapshot()
	if !st.IsAuthenticated {
		return ErrNotLoggedIn
	}
	renderPairs(a.out, "Current user", [][2]string{
		{"ID", st.User.ID.String()},
		{"Name", st.User.DisplayName()},
		{"Email", st.User.Email},
		{"Role", string(st.User.Role)},
	})
	return nil
}

// authorize applies the admin route guard before a protected command.
func (a *App) authorize() error {
	switch stores.Guard(a.auth.Snapshot(), models.RoleAdmin) {
	case stores.DecisionWait:
		return ErrInitializing
	case stores.DecisionLogin:
		a.router.set(common.RouteLogin)
		return ErrNotLoggedIn
	case stores.DecisionDenied:
		a.router.set(common.RouteDenied)
		return ErrAccessDenied
	default:
		a.router.set(common.RouteDashboard)
		return nil
	}
}

// afterCommand handles a forced navigation to the login route, which the
// HTTP client triggers when the backend rejects the session.
func (a *App) afterCommand(ctx context.Context) {
	route, ok := a.router.takeRedirect()
	if !ok || route != common.RouteLogin {
		return
	}

	fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	a.auth.InitializeAuth(ctx)
	if err := a.Login(ctx); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
	}
}
