package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/client/stores"
	"github.com/dmitrijs2005/tutoradmin/internal/common"
	"github.com/spf13/cast"
)

func (a *App) stats(ctx context.Context, args []string) error {
	days := 0
	if len(args) > 0 {
		d, err := cast.ToIntE(args[0])
		if err != nil || d < 1 {
			return usageError("stats [days]")
		}
		days = d
	}

	res := a.admin.FetchStats(ctx, days)
	if !res.Success {
		return errors.New(res.Error)
	}

	s := res.Data
	title := "Dashboard"
	if s.Days > 0 {
		title = fmt.Sprintf("Dashboard, last %d days", s.Days)
	}
	renderPairs(a.out, title, [][2]string{
		{"Parents", cast.ToString(s.TotalParents)},
		{"Tutors", cast.ToString(s.TotalTutors)},
		{"Students", cast.ToString(s.TotalStudents)},
		{"Pending onboarding", cast.ToString(s.PendingOnboarding)},
		{"Active sessions", cast.ToString(s.ActiveSessions)},
		{"Transactions", cast.ToString(s.TotalTransactions)},
		{"Revenue", money(s.TotalRevenue, "")},
		{"Pending payouts", money(s.PendingPayouts, "")},
	})
	return nil
}

func (a *App) listAdmins(ctx context.Context, _ []string) error {
	res := a.admin.FetchAdmins(ctx)
	if !res.Success {
		return errors.New(res.Error)
	}
	a.renderAdmins()
	return nil
}

func (a *App) renderAdmins() {
	admins := a.admin.Snapshot().Admins
	rows := make([][]string, 0, len(admins))
	for _, ad := range admins {
		rows = append(rows, []string{ad.ID.String(), ad.DisplayName(), ad.Email, date(ad.CreatedAt)})
	}
	renderTable(a.out, []string{"ID", "Name", "Email", "Created"}, rows)
}

func (a *App) addAdmin(ctx context.Context, _ []string) error {
	first, err := GetRequiredText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	last, err := GetRequiredText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := GetRequiredText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.admin.CreateAdmin(ctx, models.NewAdmin{FirstName: first, LastName: last, Email: email, Password: string(password)})
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "Admin %s created\n", res.Data.DisplayName())
	return nil
}

func (a *App) deleteAdmin(ctx context.Context, args []string) error {
	id, err := idArg(args, "deladmin <id>")
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete admin %s? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	res := a.admin.DeleteAdmin(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "Admin %s deleted\n", id)
	return nil
}

func (a *App) pending(ctx context.Context, args []string) error {
	page, _ := pageAndSearch(args)

	res := a.admin.FetchPendingUsers(ctx, page, pageLimit)
	if !res.Success {
		return errors.New(res.Error)
	}

	rows := make([][]string, 0, len(res.Data.Items))
	for _, u := range res.Data.Items {
		rows = append(rows, []string{u.ID.String(), orDash(u.FullName()), u.Email, string(u.Role), orDash(u.OnboardingStatus), date(u.CreatedAt)})
	}
	renderTable(a.out, []string{"ID", "Name", "Email", "Role", "Onboarding", "Registered"}, rows)
	renderPagination(a.out, res.Data.Pagination)
	return nil
}

func (a *App) approve(ctx context.Context, args []string) error {
	id, err := idArg(args, "approve <userId>")
	if err != nil {
		return err
	}
	res := a.admin.ApproveOnboarding(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "Onboarding approved for %s, %d still pending\n", id, a.admin.Snapshot().PendingPagination.Total)
	return nil
}

func (a *App) user(ctx context.Context, args []string) error {
	id, err := idArg(args, "user <id>")
	if err != nil {
		return err
	}
	res := a.admin.FetchUser(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}
	u := res.Data
	renderPairs(a.out, "User "+u.ID.String(), [][2]string{
		{"Name", orDash(u.DisplayName())},
		{"Email", u.Email},
		{"Role", string(u.Role)},
	})
	return nil
}

func (a *App) userData(ctx context.Context, args []string) error {
	id, err := idArg(args, "userdata <id>")
	if err != nil {
		return err
	}
	res := a.admin.FetchUserData(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}

	d := res.Data
	renderPairs(a.out, "User "+d.User.ID.String(), [][2]string{
		{"Name", orDash(d.User.DisplayName())},
		{"Email", d.User.Email},
		{"Role", string(d.User.Role)},
	})
	if d.Parent != nil {
		a.renderParentDetail(*d.Parent)
	}
	if d.Tutor != nil {
		a.renderTutorDetail(*d.Tutor)
	}
	return nil
}

func (a *App) payments(ctx context.Context, _ []string) error {
	res := a.admin.FetchPaymentRequests(ctx)
	if !res.Success {
		return errors.New(res.Error)
	}
	renderTable(a.out, paymentHeaders, paymentRows(a.admin.Snapshot().PaymentRequests))
	return nil
}

func (a *App) payment(ctx context.Context, args []string) error {
	id, err := idArg(args, "payment <id>")
	if err != nil {
		return err
	}
	res := a.admin.FetchPaymentRequest(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}
	renderPayment(a.out, res.Data)
	return nil
}

func (a *App) setStatus(ctx context.Context, args []string) error {
	id, status, err := statusArgs(args, "setstatus <id> <status>")
	if err != nil {
		return err
	}
	res := a.admin.UpdatePaymentStatus(ctx, id, status)
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "Payment request %s is now %s\n", id, statusBadge(status))
	if sel := a.admin.Snapshot().SelectedPaymentRequest; sel != nil && sel.ID == id {
		renderPayment(a.out, *sel)
	}
	return nil
}

func (a *App) statuses(context.Context, []string) error {
	opts := stores.PaymentStatusOptions()
	rows := make([][]string, 0, len(opts))
	for _, o := range opts {
		rows = append(rows, []string{string(o.Value), statusBadge(o.Value)})
	}
	renderTable(a.out, []string{"Value", "Label"}, rows)
	return nil
}
