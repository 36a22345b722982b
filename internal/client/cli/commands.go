package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/spf13/cast"
)

type command struct {
	name      string
	usage     string
	help      string
	protected bool
	run       func(ctx context.Context, args []string) error
}

func (a *App) registerCommands() {
	login := func(ctx context.Context, _ []string) error { return a.Login(ctx) }
	logout := func(ctx context.Context, _ []string) error { return a.Logout(ctx) }

	cmds := []command{
		{name: "login", help: "sign in", run: login},
		{name: "logout", help: "sign out", run: logout},
		{name: "whoami", help: "show the signed-in user", run: a.whoAmI},

		{name: "stats", usage: "stats [days]", help: "dashboard totals", protected: true, run: a.stats},
		{name: "admins", help: "list admin accounts", protected: true, run: a.listAdmins},
		{name: "addadmin", help: "create an admin account", protected: true, run: a.addAdmin},
		{name: "deladmin", usage: "deladmin <id>", help: "delete an admin account", protected: true, run: a.deleteAdmin},
		{name: "pending", usage: "pending [page]", help: "accounts awaiting onboarding approval", protected: true, run: a.pending},
		{name: "approve", usage: "approve <userId>", help: "approve onboarding", protected: true, run: a.approve},
		{name: "user", usage: "user <id>", help: "show an account", protected: true, run: a.user},
		{name: "userdata", usage: "userdata <id>", help: "show an account with its full record", protected: true, run: a.userData},

		{name: "payments", help: "list payment requests", protected: true, run: a.payments},
		{name: "payment", usage: "payment <id>", help: "show a payment request", protected: true, run: a.payment},
		{name: "setstatus", usage: "setstatus <id> <status>", help: "change a payment request status", protected: true, run: a.setStatus},
		{name: "statuses", help: "list payment statuses", run: a.statuses},

		{name: "parents", usage: "parents [page] [search]", help: "list parents", protected: true, run: a.listParents},
		{name: "parent", usage: "parent <id>", help: "show a parent", protected: true, run: a.parent},
		{name: "tutors", usage: "tutors [page] [search]", help: "list tutors", protected: true, run: a.listTutors},
		{name: "tutor", usage: "tutor <id>", help: "show a tutor", protected: true, run: a.tutor},
		{name: "filter", usage: "filter parents|tutors <text>", help: "filter the loaded page", protected: true, run: a.filter},
		{name: "tpayments", help: "list tutor payment requests", protected: true, run: a.tutorPayments},
		{name: "tpayment", usage: "tpayment <id>", help: "show a tutor payment request", protected: true, run: a.tutorPayment},
		{name: "tsetstatus", usage: "tsetstatus <id> <status>", help: "change a tutor payment request status", protected: true, run: a.tutorSetStatus},
	}

	a.commands = make(map[string]command, len(cmds))
	a.order = a.order[:0]
	for _, c := range cmds {
		if c.usage == "" {
			c.usage = c.name
		}
		a.commands[c.name] = c
		a.order = append(a.order, c.name)
	}
}

// exec runs the named command. known is false when no such command exists.
func (a *App) exec(ctx context.Context, name string, args []string) (known bool, err error) {
	c, ok := a.commands[name]
	if !ok {
		return false, nil
	}
	if c.protected {
		if err := a.authorize(); err != nil {
			return true, err
		}
	}
	return true, c.run(ctx, args)
}

func (a *App) help() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range a.order {
		c := a.commands[name]
		if c.protected && !a.isLoggedIn() {
			continue
		}
		fmt.Fprintf(&b, "  %-30s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(&b, "  %-30s %s", "exit | quit", "leave the console")
	return b.String()
}

func usageError(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

// idArg returns args[0] as an id.
func idArg(args []string, usage string) (models.ID, error) {
	if len(args) < 1 || args[0] == "" {
		return "", usageError(usage)
	}
	return models.ID(args[0]), nil
}

// pageAndSearch splits "[page] [search words...]".
func pageAndSearch(args []string) (int, string) {
	if len(args) == 0 {
		return 1, ""
	}
	if page, err := cast.ToIntE(args[0]); err == nil && page > 0 {
		return page, strings.Join(args[1:], " ")
	}
	return 1, strings.Join(args, " ")
}

func statusArgs(args []string, usage string) (models.ID, models.PaymentStatus, error) {
	if len(args) != 2 {
		return "", "", usageError(usage)
	}
	return models.ID(args[0]), models.PaymentStatus(strings.ToUpper(args[1])), nil
}
